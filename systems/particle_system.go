package systems

import (
	"sync/atomic"

	"github.com/lixenwraith/sandstorm/components"
	"github.com/lixenwraith/sandstorm/constants"
	"github.com/lixenwraith/sandstorm/engine"
	"github.com/lixenwraith/sandstorm/status"
	"github.com/lixenwraith/sandstorm/vmath"
)

// ParticleSystem spawns, advances and sweeps the sand field
type ParticleSystem struct {
	proj vmath.Projection

	statParticles *atomic.Int64
}

// NewParticleSystem creates a particle system projecting the pointer through proj
func NewParticleSystem(proj vmath.Projection, reg *status.Registry) *ParticleSystem {
	return &ParticleSystem{
		proj:          proj,
		statParticles: reg.Ints.Get(status.KeyParticles),
	}
}

// SetProjection replaces the projection after a canvas resize
func (s *ParticleSystem) SetProjection(proj vmath.Projection) {
	s.proj = proj
}

// Update spawns this tick's burst and advances every particle one tick
func (s *ParticleSystem) Update(world *engine.World) {
	s.spawn(world)

	st := world.State
	steer := st.Spread < constants.SteerSpreadThreshold
	lock := st.Spread < constants.SteerLockSpread
	strength := constants.SteerStrengthMax * (1 - st.Spread/constants.SteerSpreadThreshold)

	for _, p := range world.Particles {
		if !p.Alive() {
			continue
		}

		p.VX += st.WindX * constants.ParticleWindGain
		p.VZ += st.WindZ*constants.ParticleWindGain + constants.ParticleForwardDrift
		p.VX *= constants.ParticleDrag
		p.VZ *= constants.ParticleDrag

		if steer {
			target := s.proj.LateralAt(st.Pointer, p.Z)
			desired := (target - p.X) * constants.SteerGain
			p.VX = vmath.Lerp(p.VX, desired, strength)
		}

		p.VX = vmath.Clamp(p.VX, -constants.ParticleMaxLateralVelocity, constants.ParticleMaxLateralVelocity)
		if lock {
			p.VX *= constants.SteerLockDamping
		}

		p.X += p.VX
		p.Z += p.VZ

		if p.Z > constants.ParticleFarDepth {
			s.recycle(world, p)
		}
		if p.Z < constants.ParticleMinDepth {
			p.Z = constants.ParticleMinDepth
			if p.VZ < 0 {
				p.VZ = 0
			}
		}

		// Inelastic lane walls
		if p.X > constants.LaneHalfWidth {
			p.X = constants.LaneHalfWidth
			p.VX *= constants.ParticleWallDamping
		} else if p.X < -constants.LaneHalfWidth {
			p.X = -constants.LaneHalfWidth
			p.VX *= constants.ParticleWallDamping
		}

		p.Life--
	}
}

// Sweep removes particles whose lifetime ran out, preserving order
func (s *ParticleSystem) Sweep(world *engine.World) {
	live := world.Particles[:0]
	for _, p := range world.Particles {
		if p.Alive() {
			live = append(live, p)
		}
	}
	clear(world.Particles[len(live):])
	world.Particles = live
	s.statParticles.Store(int64(len(live)))
}

// spawn appends up to ParticleSpawnPerTick particles while below the cap
func (s *ParticleSystem) spawn(world *engine.World) {
	room := constants.ParticleMaxCount - len(world.Particles)
	n := min(constants.ParticleSpawnPerTick, room)
	for i := 0; i < n; i++ {
		p := &components.Particle{}
		depth := constants.ParticleSpawnDepthMin + world.Rand.Float64()*constants.ParticleSpawnDepthRange
		s.reset(world, p, depth)
		world.Particles = append(world.Particles, p)
	}
}

// recycle moves a particle past the far bound back near the camera, identity preserved
func (s *ParticleSystem) recycle(world *engine.World, p *components.Particle) {
	depth := constants.ParticleRecycleDepthMin + world.Rand.Float64()*constants.ParticleRecycleDepthRange
	s.reset(world, p, depth)
}

// reset places p at depth around the pointer with fresh velocity and lifetime
func (s *ParticleSystem) reset(world *engine.World, p *components.Particle, depth float64) {
	rng := world.Rand
	st := world.State

	halfWidth := constants.ParticleSpawnJitterMin + st.Spread*constants.ParticleSpawnJitterSpread
	center := s.proj.LateralAt(st.Pointer, depth)
	x := center + (rng.Float64()*2-1)*halfWidth

	p.X = vmath.Clamp(x, -constants.LaneHalfWidth, constants.LaneHalfWidth)
	p.Z = depth
	p.VX = (rng.Float64()*2 - 1) * constants.ParticleInitialVXRange
	p.VZ = constants.ParticleInitialVZMin + rng.Float64()*constants.ParticleInitialVZRange
	p.Life = constants.ParticleLifeMin + rng.Intn(constants.ParticleLifeRange+1)
	p.Glyph = constants.ParticleGlyphs[rng.Intn(len(constants.ParticleGlyphs))]
	p.HasDisplay = false
}
