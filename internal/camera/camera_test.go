package camera

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestNewCameraLooksAtOrigin(t *testing.T) {
	c := New()

	if c.Position != (rl.Vector3{X: 0, Y: 0, Z: 30}) {
		t.Errorf("Expected eye at (0,0,30), got %v", c.Position)
	}
	if c.Target != rl.Vector3Zero() {
		t.Errorf("Expected target at origin, got %v", c.Target)
	}
	if c.Up != (rl.Vector3{X: 0, Y: 1, Z: 0}) {
		t.Errorf("Expected +Y up, got %v", c.Up)
	}
}

func TestViewMovesOriginInFrontOfCamera(t *testing.T) {
	v := New().View()

	// The origin sits 30 units along -Z in eye space.
	p := rl.Vector3Transform(rl.Vector3Zero(), v)
	if p.X != 0 || p.Y != 0 || p.Z != -30 {
		t.Errorf("Expected origin at (0,0,-30) in eye space, got %v", p)
	}
}

func TestViewKeepsUpAxis(t *testing.T) {
	v := New().View()

	// +Y stays +Y in eye space for a camera on the Z axis.
	up := rl.Vector3Subtract(rl.Vector3Transform(rl.Vector3{Y: 1}, v), rl.Vector3Transform(rl.Vector3Zero(), v))
	if up.X != 0 || up.Y != 1 || up.Z != 0 {
		t.Errorf("Expected up (0,1,0) in eye space, got %v", up)
	}
}
