package engine

import (
	"math/rand"

	"github.com/lixenwraith/sandstorm/components"
	"github.com/lixenwraith/sandstorm/constants"
	"github.com/lixenwraith/sandstorm/status"
)

// World owns everything one simulation mutates per tick
// Single-goroutine: only the frame loop touches it
type World struct {
	State     *GameState
	Particles []*components.Particle
	Enemies   []*components.Enemy

	Rand     *rand.Rand
	Notifier Notifier
	Status   *status.Registry
}

// NewWorld creates a world with its own random source
// A nil notifier is replaced with NopNotifier, a nil registry with a fresh one
func NewWorld(seed int64, notifier Notifier, reg *status.Registry) *World {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &World{
		State:     NewGameState(),
		Particles: make([]*components.Particle, 0, constants.ParticleMaxCount),
		Enemies:   make([]*components.Enemy, 0, 16),
		Rand:      rand.New(rand.NewSource(seed)),
		Notifier:  notifier,
		Status:    reg,
	}
}

// Reset clears entities and restores initial state, keeping rng, notifier and registry
func (w *World) Reset() {
	w.State.Reset()
	clear(w.Particles)
	w.Particles = w.Particles[:0]
	clear(w.Enemies)
	w.Enemies = w.Enemies[:0]
}
