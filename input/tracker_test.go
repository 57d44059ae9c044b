package input

import (
	"math"
	"testing"

	"github.com/lixenwraith/sandstorm/constants"
	"github.com/lixenwraith/sandstorm/status"
	"pgregory.net/rapid"
)

func TestTrackerStartsNeutral(t *testing.T) {
	tr := NewTracker(nil)
	x, y, z := tr.Wind()
	if x != 0 || y != 0 || z != 0 {
		t.Errorf("wind = (%v,%v,%v), want zero", x, y, z)
	}
	if tr.Spread() != constants.DefaultSpread {
		t.Errorf("spread = %v, want %v", tr.Spread(), constants.DefaultSpread)
	}
	if tr.Pointer() != constants.DefaultPointer {
		t.Errorf("pointer = %v, want %v", tr.Pointer(), constants.DefaultPointer)
	}
	if tr.Running() {
		t.Error("new tracker should not be running")
	}
}

func TestTrackerSmoothsTowardSample(t *testing.T) {
	tr := NewTracker(nil)
	s := Sample{Wind: [3]float64{1, 0, 0.5}, Spread: 0.2, Pointer: 0.9, Running: true}

	tr.Push(s)
	x, _, z := tr.Wind()
	if math.Abs(x-constants.TrackerSmoothing) > 1e-9 {
		t.Errorf("after one sample wind x = %v, want %v", x, constants.TrackerSmoothing)
	}
	if z <= 0 || z >= 0.5 {
		t.Errorf("wind z = %v, want strictly between 0 and 0.5", z)
	}

	for range 50 {
		tr.Push(s)
	}
	if math.Abs(tr.Spread()-0.2) > 1e-3 {
		t.Errorf("spread converged to %v, want 0.2", tr.Spread())
	}
	if math.Abs(tr.Pointer()-0.9) > 1e-3 {
		t.Errorf("pointer converged to %v, want 0.9", tr.Pointer())
	}
	if !tr.Running() {
		t.Error("tracker should be running after live samples")
	}
}

func TestTrackerDecaysWithoutSamples(t *testing.T) {
	tr := NewTracker(nil)
	for range 30 {
		tr.Push(Sample{Wind: [3]float64{2, 0, 2}, Spread: 0, Pointer: 0.1, Running: true})
	}
	tr.Advance() // consumes the fresh flag

	x0, _, _ := tr.Wind()
	s0 := tr.Spread()
	p0 := tr.Pointer()

	tr.Advance()
	x1, _, _ := tr.Wind()
	if x1 >= x0 {
		t.Errorf("wind did not decay: %v -> %v", x0, x1)
	}
	if tr.Spread() <= s0 {
		t.Errorf("spread did not drift open: %v -> %v", s0, tr.Spread())
	}
	if tr.Pointer() != p0 {
		t.Errorf("pointer moved without input: %v -> %v", p0, tr.Pointer())
	}
	if tr.Running() {
		t.Error("tracker should stop running on a missed frame")
	}

	for range 500 {
		tr.Advance()
	}
	x, _, z := tr.Wind()
	if x != 0 || z != 0 {
		t.Errorf("wind after long idle = (%v, %v), want zero", x, z)
	}
	if math.Abs(tr.Spread()-1) > 1e-6 {
		t.Errorf("spread after long idle = %v, want 1", tr.Spread())
	}
}

func TestTrackerIgnoresStoppedSamples(t *testing.T) {
	reg := status.NewRegistry()
	tr := NewTracker(reg)
	tr.Push(Sample{Wind: [3]float64{2, 0, 0}, Spread: 0, Running: false})

	if x, _, _ := tr.Wind(); x != 0 {
		t.Errorf("stopped sample moved wind to %v", x)
	}
	if got := reg.Ints.Get(status.KeyTrackerSamples).Load(); got != 1 {
		t.Errorf("sample counter = %d, want 1", got)
	}
}

func TestTrackerClampsAnyInput(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tr := NewTracker(nil)
		n := rapid.IntRange(1, 20).Draw(t, "n")
		for range n {
			tr.Push(Sample{
				Wind: [3]float64{
					rapid.Float64().Draw(t, "wx"),
					rapid.Float64().Draw(t, "wy"),
					rapid.Float64().Draw(t, "wz"),
				},
				Spread:  rapid.Float64().Draw(t, "spread"),
				Pointer: rapid.Float64().Draw(t, "pointer"),
				Running: true,
			})
			if rapid.Bool().Draw(t, "advance") {
				tr.Advance()
			}
		}

		x, y, z := tr.Wind()
		for _, w := range []float64{x, y, z} {
			if math.IsNaN(w) || math.Abs(w) > constants.MaxWind {
				t.Fatalf("wind component out of range: %v", w)
			}
		}
		if s := tr.Spread(); math.IsNaN(s) || s < 0 || s > 1 {
			t.Fatalf("spread out of range: %v", s)
		}
		if p := tr.Pointer(); math.IsNaN(p) || p < 0 || p > 1 {
			t.Fatalf("pointer out of range: %v", p)
		}
	})
}
