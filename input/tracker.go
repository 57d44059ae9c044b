package input

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/sandstorm/constants"
	"github.com/lixenwraith/sandstorm/status"
	"github.com/lixenwraith/sandstorm/vmath"
)

// Sample is one reading from a tracker, remote or local
// Wind components are lateral, vertical, depth
type Sample struct {
	Wind    [3]float64 `json:"wind"`
	Spread  float64    `json:"spread"`
	Pointer float64    `json:"pointer"`
	Running bool       `json:"running"`
}

// Tracker smooths pushed samples and decays toward neutral when none arrive
// Push may be called from any goroutine; Advance once per frame
type Tracker struct {
	mu      sync.Mutex
	wind    [3]float64
	spread  float64
	pointer float64
	running bool
	fresh   bool

	statSamples *atomic.Int64
}

var _ Source = (*Tracker)(nil)

// NewTracker creates a tracker at the neutral reading
func NewTracker(reg *status.Registry) *Tracker {
	if reg == nil {
		reg = status.NewRegistry()
	}
	t := &Tracker{statSamples: reg.Ints.Get(status.KeyTrackerSamples)}
	t.Reset()
	return t
}

// Reset returns to zero wind, open spread and centered pointer
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.wind = [3]float64{}
	t.spread = constants.DefaultSpread
	t.pointer = constants.DefaultPointer
	t.running = false
	t.fresh = false
}

// Push blends a sample into the smoothed reading
// A sample with Running false counts as missing
func (t *Tracker) Push(s Sample) {
	t.statSamples.Add(1)
	if !s.Running {
		return
	}

	a := constants.TrackerSmoothing
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.wind {
		w := vmath.ClampOr(s.Wind[i], -constants.MaxWind, constants.MaxWind, 0)
		t.wind[i] += a * (w - t.wind[i])
	}
	t.spread += a * (vmath.ClampOr(s.Spread, 0, 1, constants.DefaultSpread) - t.spread)
	t.pointer += a * (vmath.ClampOr(s.Pointer, 0, 1, constants.DefaultPointer) - t.pointer)
	t.running = true
	t.fresh = true
}

// Advance closes a frame; without a sample since the last call the reading decays
func (t *Tracker) Advance() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fresh {
		t.fresh = false
		return
	}
	for i := range t.wind {
		t.wind[i] *= constants.TrackerWindDecay
		if math.Abs(t.wind[i]) < 1e-6 {
			t.wind[i] = 0
		}
	}
	t.spread += (constants.DefaultSpread - t.spread) * constants.TrackerSpreadDrift
	t.running = false
}

func (t *Tracker) Wind() (x, y, z float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.wind[0], t.wind[1], t.wind[2]
}

func (t *Tracker) Spread() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.spread
}

func (t *Tracker) Pointer() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pointer
}

// Running reports whether a live sample arrived in the last frame
func (t *Tracker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}
