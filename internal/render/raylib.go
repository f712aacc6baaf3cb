package render

import (
	"solarsystem/internal/projection"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaylibGraphics draws through rlgl. It carries no state of its own; the
// matrices live in the GL context.
type RaylibGraphics struct{}

func NewRaylibGraphics() *RaylibGraphics {
	return &RaylibGraphics{}
}

func (g *RaylibGraphics) BeginFrame() {
	rl.BeginDrawing()
}

func (g *RaylibGraphics) Clear(c rl.Color) {
	rl.ClearBackground(c)
}

// Begin3D replaces the default 2D matrices with the given projection and
// camera view, the same way rl.BeginMode3D does but with our clip planes.
func (g *RaylibGraphics) Begin3D(p projection.Projection, view rl.Matrix) {
	rl.DrawRenderBatchActive()

	vp := p.Viewport
	rl.Viewport(int32(vp.X), int32(vp.Y), int32(vp.Width), int32(vp.Height))
	rl.SetMatrixProjection(p.Matrix())
	rl.SetMatrixModelview(view)

	rl.EnableDepthTest()
}

func (g *RaylibGraphics) PushMatrix() { rl.PushMatrix() }
func (g *RaylibGraphics) PopMatrix()  { rl.PopMatrix() }

func (g *RaylibGraphics) Rotate(angle, x, y, z float32) {
	rl.Rotatef(angle, x, y, z)
}

func (g *RaylibGraphics) Translate(x, y, z float32) {
	rl.Translatef(x, y, z)
}

func (g *RaylibGraphics) Sphere(radius float32, rings, slices int32, c rl.Color) {
	rl.DrawSphereEx(rl.Vector3Zero(), radius, raylibRings(rings), slices, c)
}

// raylibRings converts a stack count to DrawSphereEx's rings argument;
// raylib tessellates rings+2 stacks.
func raylibRings(stacks int32) int32 {
	if stacks < 3 {
		return 1
	}
	return stacks - 2
}

// End3D flushes the 3D batch and restores raylib's screen-space matrices so
// 2D overlays land in pixel coordinates.
func (g *RaylibGraphics) End3D() {
	rl.DrawRenderBatchActive()

	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	rl.SetMatrixProjection(rl.MatrixOrtho(0, w, h, 0, 0, 1))
	rl.SetMatrixModelview(rl.MatrixIdentity())

	rl.DisableDepthTest()
}

func (g *RaylibGraphics) Label(text string) {
	gui.Label(rl.Rectangle{X: 10, Y: 10, Width: 420, Height: 20}, text)
}

func (g *RaylibGraphics) EndFrame() {
	rl.EndDrawing()
}
