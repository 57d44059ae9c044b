package systems

import (
	"log"
	"math"
	"sync/atomic"

	"github.com/lixenwraith/sandstorm/components"
	"github.com/lixenwraith/sandstorm/constants"
	"github.com/lixenwraith/sandstorm/engine"
	"github.com/lixenwraith/sandstorm/status"
	"github.com/lixenwraith/sandstorm/vmath"
)

// WaveSystem schedules waves and advances enemies
// State machine: spawning (pending or live enemies) ⇄ between-waves (timed, empty lane)
type WaveSystem struct {
	waves []components.Wave

	statEnemies *atomic.Int64
	statPending *atomic.Int64
	statAttacks *atomic.Int64
	statWave    *atomic.Int64
}

// NewWaveSystem creates a scheduler over the authored wave list, which must not be empty
func NewWaveSystem(waves []components.Wave, reg *status.Registry) *WaveSystem {
	return &WaveSystem{
		waves:       waves,
		statEnemies: reg.Ints.Get(status.KeyEnemies),
		statPending: reg.Ints.Get(status.KeyPending),
		statAttacks: reg.Ints.Get(status.KeyAttacks),
		statWave:    reg.Ints.Get(status.KeyWave),
	}
}

// WaveFor maps an absolute wave number to its authored wave and final-wave repetition
// Repetition is 0 for every authored wave including the first run of the final one
func (s *WaveSystem) WaveFor(index int) (components.Wave, int) {
	last := len(s.waves) - 1
	if index <= last {
		return s.waves[index], 0
	}
	return s.waves[last], index - last
}

// HealthMultiplier returns the enemy health scale of an absolute wave number
func HealthMultiplier(index int) float64 {
	return 1 + float64(index)*constants.WaveHealthScale
}

// RepeatDelay compresses an authored delay for the given final-wave repetition
func RepeatDelay(delay, repeat int) int {
	if repeat <= 0 {
		return delay
	}
	floor := int(math.Ceil(float64(delay) * constants.FinalWaveMinDelayFactor))
	return max(delay-repeat*constants.FinalWaveDelayStep, floor)
}

// StartWave fills the pending queue for absolute wave index and leaves between-waves
func (s *WaveSystem) StartWave(world *engine.World, index int) {
	st := world.State
	wave, repeat := s.WaveFor(index)

	st.WaveIndex = index
	st.WaveTimer = 0
	st.HealthMult = HealthMultiplier(index)
	st.BetweenWaves = false
	st.BetweenTimer = 0
	st.AnnounceTimer = constants.WaveAnnounceTicks

	st.Pending = st.Pending[:0]
	for _, entry := range wave.Entries {
		st.Pending = append(st.Pending, components.PendingSpawn{
			Kind:    entry.Kind,
			Lateral: entry.Lateral,
			Delay:   RepeatDelay(entry.Delay, repeat),
		})
	}

	s.statWave.Store(int64(index))
	s.statPending.Store(int64(len(st.Pending)))
	log.Printf("[WaveSystem] wave %d started (%s, repeat %d, %d spawns, health x%.2f)",
		index+1, wave.Name, repeat, len(st.Pending), st.HealthMult)
	world.Notifier.WaveStart(index)
}

// Update runs the scheduler and advances enemies one tick
func (s *WaveSystem) Update(world *engine.World) {
	st := world.State

	if st.AnnounceTimer > 0 {
		st.AnnounceTimer--
	}

	if st.BetweenWaves {
		st.BetweenTimer--
		if st.BetweenTimer > 0 {
			return
		}
		s.StartWave(world, st.WaveIndex+1)
	}

	s.spawnDue(world)
	st.WaveTimer++

	s.advance(world)
	s.Settle(world)
}

// Settle enters between-waves once nothing is pending and no enemy is alive
// Called after the wave update and again after combat
func (s *WaveSystem) Settle(world *engine.World) {
	st := world.State
	s.statEnemies.Store(int64(len(world.Enemies)))
	s.statPending.Store(int64(len(st.Pending)))

	if st.BetweenWaves || len(st.Pending) > 0 || len(world.Enemies) > 0 {
		return
	}
	st.BetweenWaves = true
	st.BetweenTimer = constants.BetweenWaveTicks
	log.Printf("[WaveSystem] wave %d cleared", st.WaveIndex+1)
}

// spawnDue creates every pending enemy whose delay has elapsed
func (s *WaveSystem) spawnDue(world *engine.World) {
	st := world.State
	remaining := st.Pending[:0]
	for _, ps := range st.Pending {
		if ps.Delay > st.WaveTimer {
			remaining = append(remaining, ps)
			continue
		}
		var x float64
		if ps.Lateral != nil {
			x = vmath.Clamp(*ps.Lateral, -constants.LaneHalfWidth, constants.LaneHalfWidth)
		} else {
			span := constants.LaneHalfWidth - constants.EnemySpawnLateralMargin
			x = (world.Rand.Float64()*2 - 1) * span
		}
		world.Enemies = append(world.Enemies, components.NewEnemy(ps.Kind, x, st.HealthMult, world.Rand))
	}
	st.Pending = remaining
}

// advance moves enemies toward the camera and resolves attacks
func (s *WaveSystem) advance(world *engine.World) {
	st := world.State
	live := world.Enemies[:0]

	for _, e := range world.Enemies {
		if e.Flash > 0 {
			e.Flash--
		}
		if e.Shield != nil && e.Shield.Flash > 0 {
			e.Shield.Flash--
		}

		if e.Rush != nil {
			e.Speed = rushSpeed(e)
		}
		e.Z -= e.Speed

		if e.Strafe != nil {
			strafe(e)
		}

		if e.Z <= constants.AttackDepth {
			damage := e.Damage()
			st.DamagePlayer(damage)
			st.Attacks++
			s.statAttacks.Add(1)
			world.Notifier.PlayerHit(damage)
			continue
		}
		live = append(live, e)
	}

	clear(world.Enemies[len(live):])
	world.Enemies = live
}

// rushSpeed grows quadratically from base speed at spawn to base*(1+boost) at attack depth
func rushSpeed(e *components.Enemy) float64 {
	travel := constants.EnemySpawnDepth - constants.AttackDepth
	progress := vmath.Clamp((constants.EnemySpawnDepth-e.Z)/travel, 0, 1)
	return e.Rush.BaseSpeed * (1 + e.Rush.Boost*progress*progress)
}

// strafe moves a dodger sideways, reversing on its period or at the lane bounds
func strafe(e *components.Enemy) {
	st := e.Strafe
	e.X += st.Dir * st.Speed
	st.Timer++

	bound := constants.LaneHalfWidth - constants.EnemySpawnLateralMargin
	switch {
	case e.X > bound:
		e.X = bound
		st.Dir = -1
		st.Timer = 0
	case e.X < -bound:
		e.X = -bound
		st.Dir = 1
		st.Timer = 0
	case st.Timer >= st.Period:
		st.Dir = -st.Dir
		st.Timer = 0
	}
}
