package camera

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Fixed is a camera that never moves. The field of view belongs to the
// projection, not the camera.
type Fixed struct {
	Position rl.Vector3
	Target   rl.Vector3
	Up       rl.Vector3
}

// New returns the scene camera: 30 units down +Z looking at the origin.
func New() *Fixed {
	return &Fixed{
		Position: rl.Vector3{X: 0, Y: 0, Z: 30},
		Target:   rl.Vector3Zero(),
		Up:       rl.Vector3{X: 0, Y: 1, Z: 0},
	}
}

// View is the look-at (modelview) matrix for the camera.
func (c *Fixed) View() rl.Matrix {
	return rl.MatrixLookAt(c.Position, c.Target, c.Up)
}
