// Package render draws the Sun and the orbiting Earth.
package render

import (
	"fmt"
	"time"

	"solarsystem/internal/camera"
	"solarsystem/internal/orbit"
	"solarsystem/internal/projection"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Body is a sphere drawn at the current matrix origin.
type Body struct {
	Radius float32
	Rings  int32
	Slices int32
	Color  rl.Color
}

var (
	Sun   = Body{Radius: 3, Rings: 20, Slices: 20, Color: rl.NewColor(255, 255, 0, 255)}
	Earth = Body{Radius: 1, Rings: 16, Slices: 16, Color: rl.NewColor(0, 0, 255, 255)}

	Background = rl.NewColor(0, 0, 0, 255)
)

// Renderer draws the Sun at the origin and the Earth on its orbit.
type Renderer struct {
	Camera *camera.Fixed
	Orbit  orbit.Orbit
	Sun    Body
	Earth  Body
	HUD    bool
}

// NewRenderer uses the fixed camera, the default orbit and no HUD.
func NewRenderer() *Renderer {
	return &Renderer{
		Camera: camera.New(),
		Orbit:  orbit.Default(),
		Sun:    Sun,
		Earth:  Earth,
	}
}

// DrawFrame renders and presents one frame for the given elapsed time.
func (r *Renderer) DrawFrame(g Graphics, p projection.Projection, elapsed time.Duration) {
	g.BeginFrame()
	g.Clear(Background)

	g.Begin3D(p, r.Camera.View())
	r.drawBody(g, r.Sun)

	g.PushMatrix()
	g.Rotate(float32(r.Orbit.RawAngleAt(elapsed)), 0, 1, 0)
	g.Translate(r.Orbit.Radius, 0, 0)
	r.drawBody(g, r.Earth)
	g.PopMatrix()
	g.End3D()

	if r.HUD {
		g.Label(r.hudText(p, elapsed))
	}

	g.EndFrame()
}

func (r *Renderer) drawBody(g Graphics, b Body) {
	g.Sphere(b.Radius, b.Rings, b.Slices, b.Color)
}

func (r *Renderer) hudText(p projection.Projection, elapsed time.Duration) string {
	return fmt.Sprintf("t=%.2fs  angle=%.1f deg  viewport=%dx%d",
		elapsed.Seconds(), r.Orbit.AngleAt(elapsed), p.Viewport.Width, p.Viewport.Height)
}
