package status

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"
)

// Metric keys published by the simulation and its collaborators
// The prefix names the publishing component and groups the debug overlay
const (
	KeyTicks          = "sim.ticks"
	KeyParticles      = "sim.particles"
	KeyEnemies        = "sim.enemies"
	KeyPending        = "sim.pending"
	KeyHits           = "combat.hits"
	KeyDeflects       = "combat.deflects"
	KeyKills          = "combat.kills"
	KeyAttacks        = "wave.attacks"
	KeyWave           = "wave.index"
	KeyWind           = "input.wind"
	KeySpread         = "input.spread"
	KeyPointer        = "input.pointer"
	KeyTrackerSamples = "tracker.samples"
	KeyTrackerClients = "tracker.clients"
	KeyTrackerSession = "tracker.session"
	KeyAudio          = "audio.enabled"
	KeyPaused         = "sim.paused"
)

// LabelMaxLen fits a tracker session uuid
const LabelMaxLen = 36

// Float is an atomic float64 stored as its bit pattern, zero value reads 0
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *Float) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Label is an atomic short string, truncated to LabelMaxLen
type Label struct {
	ptr atomic.Pointer[string]
}

func (l *Label) Store(val string) {
	if len(val) > LabelMaxLen {
		val = val[:LabelMaxLen]
	}
	l.ptr.Store(&val)
}

func (l *Label) Load() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}

// Table hands out one metric per key
// Components fetch their pointers at construction and write the atomics directly afterwards
type Table[T any] struct {
	mu     sync.Mutex
	items  map[string]*T
	format func(*T) string
}

func newTable[T any](format func(*T) string) *Table[T] {
	return &Table[T]{items: make(map[string]*T), format: format}
}

// Get returns the metric for key, creating it on first use
func (t *Table[T]) Get(key string) *T {
	t.mu.Lock()
	defer t.mu.Unlock()
	ptr, ok := t.items[key]
	if !ok {
		ptr = new(T)
		t.items[key] = ptr
	}
	return ptr
}

func (t *Table[T]) appendLines(lines []Line) []Line {
	t.mu.Lock()
	defer t.mu.Unlock()
	for key, ptr := range t.items {
		lines = append(lines, Line{Key: key, Value: t.format(ptr)})
	}
	return lines
}

// Registry is the metrics store shared by the simulation, input and audio
type Registry struct {
	Bools   *Table[atomic.Bool]
	Ints    *Table[atomic.Int64]
	Floats  *Table[Float]
	Strings *Table[Label]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   newTable(func(b *atomic.Bool) string { return strconv.FormatBool(b.Load()) }),
		Ints:    newTable(func(i *atomic.Int64) string { return strconv.FormatInt(i.Load(), 10) }),
		Floats:  newTable(func(f *Float) string { return fmt.Sprintf("%.2f", f.Get()) }),
		Strings: newTable((*Label).Load),
	}
}

// Line is one formatted key/value pair for display
type Line struct {
	Key   string
	Value string
}

// Snapshot formats every registered metric sorted by key, so each component's metrics sit together
func (r *Registry) Snapshot() []Line {
	var lines []Line
	lines = r.Bools.appendLines(lines)
	lines = r.Ints.appendLines(lines)
	lines = r.Floats.appendLines(lines)
	lines = r.Strings.appendLines(lines)
	slices.SortFunc(lines, func(a, b Line) int {
		switch {
		case a.Key < b.Key:
			return -1
		case a.Key > b.Key:
			return 1
		}
		return 0
	})
	return lines
}
