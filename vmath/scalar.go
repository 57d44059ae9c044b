package vmath

import "math"

// Clamp restricts v to [lo, hi]; NaN is returned unchanged
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampOr restricts v to [lo, hi] and maps NaN to neutral
// Used for collaborator-supplied values that must never be rejected
func ClampOr(v, lo, hi, neutral float64) float64 {
	if math.IsNaN(v) {
		return neutral
	}
	return Clamp(v, lo, hi)
}

// ClampInt restricts v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates from a to b by t without clamping t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Distance returns the Euclidean distance between (x1, z1) and (x2, z2)
func Distance(x1, z1, x2, z2 float64) float64 {
	return math.Hypot(x1-x2, z1-z2)
}
