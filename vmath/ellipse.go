package vmath

// Ellipse utilities for the shield glow
// Offsets are in cells; rx and ry are the semi-axes

// EllipseDistSq returns normalized squared distance for ellipse containment
// Result <= 1 means the point is inside the ellipse
func EllipseDistSq(dx, dy, rx, ry float64) float64 {
	if rx <= 0 || ry <= 0 {
		return 2
	}
	nx := dx / rx
	ny := dy / ry
	return nx*nx + ny*ny
}

// EllipseContains returns true if point (dx, dy) is inside or on the ellipse boundary
func EllipseContains(dx, dy, rx, ry float64) bool {
	return EllipseDistSq(dx, dy, rx, ry) <= 1
}

// EllipseAlpha returns opacity for a rim-bright gradient
// floor*maxAlpha at the center rising to maxAlpha at the edge, 0 outside
func EllipseAlpha(dx, dy, rx, ry, floor, maxAlpha float64) float64 {
	d := EllipseDistSq(dx, dy, rx, ry)
	if d > 1 {
		return 0
	}
	return maxAlpha * (floor + (1-floor)*d)
}
