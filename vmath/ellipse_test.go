package vmath

import (
	"math"
	"testing"
)

func TestEllipseContains(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   bool
	}{
		{"center", 0, 0, true},
		{"on x rim", 4, 0, true},
		{"on y rim", 0, 2, true},
		{"past x rim", 4.1, 0, false},
		{"corner outside", 3, 1.8, false},
		{"inside diagonal", 2, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EllipseContains(tt.dx, tt.dy, 4, 2); got != tt.want {
				t.Errorf("EllipseContains(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}

	if EllipseContains(0, 0, 0, 2) {
		t.Error("degenerate ellipse should contain nothing")
	}
}

func TestEllipseAlphaRimBright(t *testing.T) {
	center := EllipseAlpha(0, 0, 4, 2, 0.4, 1)
	mid := EllipseAlpha(2, 0, 4, 2, 0.4, 1)
	rim := EllipseAlpha(4, 0, 4, 2, 0.4, 1)

	if math.Abs(center-0.4) > 1e-9 || math.Abs(rim-1) > 1e-9 {
		t.Errorf("center %v rim %v, want 0.4 and 1", center, rim)
	}
	if !(center < mid && mid < rim) {
		t.Errorf("alpha not increasing toward rim: %v %v %v", center, mid, rim)
	}
	if EllipseAlpha(5, 0, 4, 2, 0.4, 1) != 0 {
		t.Error("outside alpha should be 0")
	}
}
