package game

import (
	"errors"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sandstorm/components"
	"github.com/lixenwraith/sandstorm/config"
	"github.com/lixenwraith/sandstorm/engine"
	"github.com/lixenwraith/sandstorm/input"
	"github.com/lixenwraith/sandstorm/render"
	"github.com/lixenwraith/sandstorm/render/renderers"
	"github.com/lixenwraith/sandstorm/status"
	"github.com/lixenwraith/sandstorm/systems"
	"github.com/lixenwraith/sandstorm/vmath"
)

// ErrNoScreen is returned when the simulation has nothing to render to
var ErrNoScreen = errors.New("no screen")

// Simulation owns one world, its systems and its render pipeline
// All methods must be called from the frame loop goroutine
type Simulation struct {
	world  *engine.World
	width  int
	height int

	waves     *systems.WaveSystem
	particles *systems.ParticleSystem
	combat    *systems.CombatSystem

	orchestrator *render.RenderOrchestrator

	statTicks   *atomic.Int64
	statPaused  *atomic.Bool
	statWind    *status.Float
	statSpread  *status.Float
	statPointer *status.Float
}

// New creates a simulation rendering to screen and starts the first wave
// A nil notifier is replaced with engine.NopNotifier
func New(screen tcell.Screen, waves []components.Wave, notifier engine.Notifier, seed int64) (*Simulation, error) {
	if screen == nil {
		return nil, ErrNoScreen
	}
	if len(waves) == 0 {
		return nil, fmt.Errorf("simulation: %w", config.ErrNoWaves)
	}
	for i, w := range waves {
		for _, entry := range w.Entries {
			if !entry.Kind.Valid() {
				return nil, fmt.Errorf("simulation: %w: wave %d has %s", config.ErrInvalidWave, i+1, entry.Kind)
			}
		}
	}

	width, height := screen.Size()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: screen size %dx%d", ErrNoScreen, width, height)
	}

	world := engine.NewWorld(seed, notifier, nil)
	reg := world.Status

	s := &Simulation{
		world:        world,
		width:        width,
		height:       height,
		waves:        systems.NewWaveSystem(waves, reg),
		particles:    systems.NewParticleSystem(vmath.NewProjection(width, height), reg),
		combat:       systems.NewCombatSystem(reg),
		orchestrator: render.NewRenderOrchestrator(screen, width, height),
		statTicks:    reg.Ints.Get(status.KeyTicks),
		statPaused:   reg.Bools.Get(status.KeyPaused),
		statWind:     reg.Floats.Get(status.KeyWind),
		statSpread:   reg.Floats.Get(status.KeySpread),
		statPointer:  reg.Floats.Get(status.KeyPointer),
	}
	s.registerRenderers()
	s.Reset()
	return s, nil
}

func (s *Simulation) registerRenderers() {
	w := s.world
	o := s.orchestrator

	o.Register(renderers.NewBackgroundRenderer(), render.PriorityBackground)
	o.Register(renderers.NewHorizonRenderer(), render.PriorityHorizon)
	o.Register(renderers.NewLaneGridRenderer(), render.PriorityGrid)
	o.Register(renderers.NewParticleRenderer(w), render.PriorityParticle)
	o.Register(renderers.NewEnemyRenderer(w), render.PriorityEnemy)
	o.Register(renderers.NewHUDRenderer(w), render.PriorityUI)
	o.Register(renderers.NewWaveAnnounceRenderer(w), render.PriorityAnnounce)
	o.Register(renderers.NewBetweenWavesRenderer(w), render.PriorityAnnounce)
	o.Register(renderers.NewDimRenderer(w), render.PriorityPostProcess)
	o.Register(renderers.NewPauseRenderer(w), render.PriorityOverlay)
	o.Register(renderers.NewGameOverRenderer(w), render.PriorityOverlay)
	o.Register(renderers.NewDebugRenderer(w), render.PriorityDebug)
}

// World exposes the simulated world for inspection
func (s *Simulation) World() *engine.World {
	return s.world
}

// Status returns the metrics registry shared with collaborators
func (s *Simulation) Status() *status.Registry {
	return s.world.Status
}

// Reset restores a fresh state, restarts music and starts wave one
func (s *Simulation) Reset() {
	s.world.Reset()
	s.world.Notifier.StartMusic()
	s.waves.StartWave(s.world, 0)
	log.Printf("[Simulation] reset")
}

// SetInput stores this frame's control signal, clamped into range
func (s *Simulation) SetInput(wind [3]float64, spread, pointer float64) {
	st := s.world.State
	st.SetWind(wind[0], wind[1], wind[2])
	st.SetSpread(spread)
	st.SetPointer(pointer)
}

// Feed samples src once and applies it through SetInput
func (s *Simulation) Feed(src input.Source) {
	x, y, z := src.Wind()
	s.SetInput([3]float64{x, y, z}, src.Spread(), src.Pointer())
}

// SetDebug shows or hides the debug overlay
func (s *Simulation) SetDebug(debug bool) {
	s.world.State.Debug = debug
}

// Debug reports whether the debug overlay is shown
func (s *Simulation) Debug() bool {
	return s.world.State.Debug
}

// SetPaused freezes or resumes gameplay; rendering continues either way
func (s *Simulation) SetPaused(paused bool) {
	s.world.State.Paused = paused
}

// Paused reports whether gameplay is frozen
func (s *Simulation) Paused() bool {
	return s.world.State.Paused
}

// Over reports whether player health has run out
func (s *Simulation) Over() bool {
	return s.world.State.GameOver
}

// Resize updates projection and render buffer for a new canvas size
func (s *Simulation) Resize(width, height int) {
	if width <= 0 || height <= 0 || (width == s.width && height == s.height) {
		return
	}
	s.width, s.height = width, height
	s.particles.SetProjection(vmath.NewProjection(width, height))
	s.orchestrator.Resize(width, height)
}

// Tick advances gameplay one step unless paused or over, then renders
func (s *Simulation) Tick() {
	st := s.world.State
	st.Frame++

	if !st.Paused && !st.GameOver {
		s.waves.Update(s.world)
		s.particles.Update(s.world)
		s.combat.Update(s.world)
		s.particles.Sweep(s.world)
		s.waves.Settle(s.world)

		if st.PlayerHealth <= 0 {
			st.GameOver = true
			log.Printf("[Simulation] game over at wave %d, score %d", st.WaveIndex+1, st.Score)
			s.world.Notifier.GameOver()
			s.world.Notifier.StopMusic()
		}
	}

	s.publish()
	s.orchestrator.RenderFrame(render.NewRenderContext(st.Frame, s.width, s.height, st.Paused, st.Debug))
}

// Buffer exposes the last composited frame
func (s *Simulation) Buffer() *render.RenderBuffer {
	return s.orchestrator.Buffer()
}

func (s *Simulation) publish() {
	st := s.world.State
	s.statTicks.Store(st.Frame)
	s.statPaused.Store(st.Paused)
	s.statWind.Set(st.WindX)
	s.statSpread.Set(st.Spread)
	s.statPointer.Set(st.Pointer)
}
