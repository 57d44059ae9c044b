package systems

import (
	"sync/atomic"

	"github.com/lixenwraith/sandstorm/components"
	"github.com/lixenwraith/sandstorm/constants"
	"github.com/lixenwraith/sandstorm/engine"
	"github.com/lixenwraith/sandstorm/status"
	"github.com/lixenwraith/sandstorm/vmath"
)

// CombatSystem resolves particle hits against enemies
type CombatSystem struct {
	statHits     *atomic.Int64
	statDeflects *atomic.Int64
	statKills    *atomic.Int64
	statEnemies  *atomic.Int64
}

// NewCombatSystem creates a combat resolver publishing counters to reg
func NewCombatSystem(reg *status.Registry) *CombatSystem {
	return &CombatSystem{
		statHits:     reg.Ints.Get(status.KeyHits),
		statDeflects: reg.Ints.Get(status.KeyDeflects),
		statKills:    reg.Ints.Get(status.KeyKills),
		statEnemies:  reg.Ints.Get(status.KeyEnemies),
	}
}

// HitDamage is the per-hit damage for a spread: HitDamageMax at 0 falling linearly to 0 at 1
func HitDamage(spread float64) float64 {
	return constants.HitDamageMax * (1 - vmath.ClampOr(spread, 0, 1, 1))
}

// Update tests every live particle against every live enemy
// A hit consumes the particle; dead enemies are removed after all particles are resolved
func (s *CombatSystem) Update(world *engine.World) {
	if len(world.Enemies) == 0 {
		return
	}

	spread := world.State.Spread
	damage := HitDamage(spread)
	anyDead := false

	for _, p := range world.Particles {
		if !p.Alive() {
			continue
		}
		for _, e := range world.Enemies {
			if e.Dead() {
				continue
			}
			if vmath.Distance(p.X, p.Z, e.X, e.Z) >= e.Radius {
				continue
			}

			p.Life = 0
			s.statHits.Add(1)
			s.applyHit(e, damage, spread)
			if e.Dead() {
				s.kill(world, e)
				anyDead = true
			}
			break
		}
	}

	if anyDead {
		live := world.Enemies[:0]
		for _, e := range world.Enemies {
			if !e.Dead() {
				live = append(live, e)
			}
		}
		clear(world.Enemies[len(live):])
		world.Enemies = live
		s.statEnemies.Store(int64(len(live)))
	}
}

// applyHit routes damage through the shield when one is charged
func (s *CombatSystem) applyHit(e *components.Enemy, damage, spread float64) {
	if e.Shielded() {
		e.Shield.Flash = constants.ShieldFlashTicks
		if spread >= constants.ShieldFocusSpread {
			s.statDeflects.Add(1)
			return
		}
		damage = e.Shield.Absorb(damage)
		if damage <= 0 {
			return
		}
	}
	e.Health = max(e.Health-damage, 0)
	e.Flash = constants.EnemyFlashTicks
}

// kill awards score and heal for a depleted enemy
func (s *CombatSystem) kill(world *engine.World, e *components.Enemy) {
	st := world.State
	st.AddScore(e.ScoreValue())
	st.HealPlayer(constants.KillHeal)
	st.Kills++
	s.statKills.Add(1)
	world.Notifier.EnemyDeath(e.Kind)
}
