// Package projection turns a window size into a viewport and a perspective
// projection.
package projection

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	FovY float32 = 45.0 // degrees, vertical
	Near float32 = 1.0
	Far  float32 = 100.0
)

var ErrProjectionSetup = errors.New("projection setup failed")

type Viewport struct {
	X, Y          int
	Width, Height int
}

// Projection is a viewport plus the perspective parameters for it.
type Projection struct {
	Viewport Viewport
	FovY     float32
	Aspect   float64
	Near     float32
	Far      float32
}

// Configure builds the projection for a width x height surface. A zero
// dimension is clamped to 1 so the aspect ratio is always defined.
func Configure(width, height int) (Projection, error) {
	if width < 0 || height < 0 {
		return Projection{}, fmt.Errorf("configure %dx%d: negative size: %w", width, height, ErrProjectionSetup)
	}
	if height == 0 {
		height = 1
	}
	if width == 0 {
		width = 1
	}

	return Projection{
		Viewport: Viewport{X: 0, Y: 0, Width: width, Height: height},
		FovY:     FovY,
		Aspect:   float64(width) / float64(height),
		Near:     Near,
		Far:      Far,
	}, nil
}

// Matrix returns the perspective matrix for this projection.
func (p Projection) Matrix() rl.Matrix {
	return rl.MatrixPerspective(p.FovY*rl.Deg2rad, float32(p.Aspect), p.Near, p.Far)
}
