package render

import (
	"solarsystem/internal/projection"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Graphics is the immediate-mode surface a frame is drawn onto. Calls must
// be made from the thread that owns the GL context.
type Graphics interface {
	BeginFrame()
	Clear(c rl.Color)
	Begin3D(p projection.Projection, view rl.Matrix)
	PushMatrix()
	PopMatrix()
	Rotate(angle, x, y, z float32)
	Translate(x, y, z float32)
	Sphere(radius float32, rings, slices int32, c rl.Color)
	End3D()
	Label(text string)
	// EndFrame presents the back buffer.
	EndFrame()
}
