package render

import (
	"fmt"

	"solarsystem/internal/projection"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type call struct {
	Op   string
	Args string
}

// recorder is a Graphics that logs every call instead of drawing.
type recorder struct {
	calls []call
	proj  projection.Projection
	view  rl.Matrix
}

func (r *recorder) add(op string, format string, args ...any) {
	r.calls = append(r.calls, call{Op: op, Args: fmt.Sprintf(format, args...)})
}

func (r *recorder) BeginFrame()      { r.add("BeginFrame", "") }
func (r *recorder) Clear(c rl.Color) { r.add("Clear", "%d,%d,%d,%d", c.R, c.G, c.B, c.A) }
func (r *recorder) Begin3D(p projection.Projection, view rl.Matrix) {
	r.proj, r.view = p, view
	r.add("Begin3D", "%dx%d", p.Viewport.Width, p.Viewport.Height)
}
func (r *recorder) PushMatrix() { r.add("PushMatrix", "") }
func (r *recorder) PopMatrix()  { r.add("PopMatrix", "") }
func (r *recorder) Rotate(angle, x, y, z float32) {
	r.add("Rotate", "%.3f,%g,%g,%g", angle, x, y, z)
}
func (r *recorder) Translate(x, y, z float32) { r.add("Translate", "%g,%g,%g", x, y, z) }
func (r *recorder) Sphere(radius float32, rings, slices int32, c rl.Color) {
	r.add("Sphere", "r=%g %d/%d %d,%d,%d", radius, rings, slices, c.R, c.G, c.B)
}
func (r *recorder) End3D()            { r.add("End3D", "") }
func (r *recorder) Label(text string) { r.add("Label", "%s", text) }
func (r *recorder) EndFrame()         { r.add("EndFrame", "") }
