package orbit

import (
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Orbit is a circular orbit in the XZ plane around the origin.
type Orbit struct {
	Speed  float64 // degrees per second about +Y
	Radius float32
}

// Default is the Earth's orbit: 50 degrees per second at radius 10.
func Default() Orbit {
	return Orbit{Speed: 50, Radius: 10}
}

// RawAngleAt is Speed * t in degrees, unwrapped. Negative t counts as zero.
func (o Orbit) RawAngleAt(t time.Duration) float64 {
	if t < 0 {
		return 0
	}
	return o.Speed * t.Seconds()
}

// AngleAt is the angular position in [0, 360).
func (o Orbit) AngleAt(t time.Duration) float64 {
	a := math.Mod(o.RawAngleAt(t), 360)
	if a < 0 {
		a += 360
	}
	return a
}

// PositionAt rotates the identity by AngleAt(t) about Y, then moves Radius
// along the rotated X axis.
func (o Orbit) PositionAt(t time.Duration) rl.Vector3 {
	rot := rl.MatrixRotateY(float32(o.AngleAt(t) * math.Pi / 180))
	return rl.Vector3Transform(rl.Vector3{X: o.Radius}, rot)
}
