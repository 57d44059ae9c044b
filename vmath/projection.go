package vmath

import "github.com/lixenwraith/sandstorm/constants"

// Projection maps world (lateral, depth) to canvas cells for a faked first-person lane
// Zero value projects everything to the origin; construct with NewProjection
type Projection struct {
	Width  float64
	Height float64

	centerX      float64
	horizonY     float64
	lateralScale float64
	floorSpan    float64
}

// NewProjection creates a projection for a canvas of the given cell dimensions
func NewProjection(width, height int) Projection {
	w, h := float64(width), float64(height)
	return Projection{
		Width:        w,
		Height:       h,
		centerX:      w / 2,
		horizonY:     h * constants.HorizonFraction,
		lateralScale: w * constants.LateralSpanFraction,
		floorSpan:    h * constants.FloorSpanFraction,
	}
}

// Factor returns the perspective factor for a depth, 1 at depth 1 and approaching 0 far away
func Factor(depth float64) float64 {
	return constants.ProjectionFOV / (depth + constants.ProjectionNearOffset)
}

// Project returns the canvas position and perspective factor of a world point
func (p Projection) Project(x, depth float64) (sx, sy, f float64) {
	f = Factor(depth)
	sx = p.centerX + x*f*p.lateralScale
	sy = p.horizonY + f*p.floorSpan
	return sx, sy, f
}

// LateralAt returns the world lateral position that projects to the given
// horizontal canvas fraction (0 left edge, 1 right edge) at a depth
func (p Projection) LateralAt(screenFrac, depth float64) float64 {
	scale := Factor(depth) * p.lateralScale
	if scale == 0 {
		return 0
	}
	return (screenFrac*p.Width - p.centerX) / scale
}

// HorizonY returns the canvas row of the vanishing line
func (p Projection) HorizonY() float64 {
	return p.horizonY
}
