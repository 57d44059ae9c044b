package systems

import (
	"math"
	"testing"

	"github.com/lixenwraith/sandstorm/components"
	"github.com/lixenwraith/sandstorm/constants"
	"pgregory.net/rapid"
)

func TestParticleSystem_SpawnBurstAndCap(t *testing.T) {
	world := newTestWorld(nil)
	ps := NewParticleSystem(testProjection(), world.Status)

	ps.Update(world)
	if got := len(world.Particles); got != constants.ParticleSpawnPerTick {
		t.Fatalf("after one tick: %d particles, want %d", got, constants.ParticleSpawnPerTick)
	}

	for i := 0; i < constants.ParticleMaxCount; i++ {
		ps.Update(world)
	}
	if got := len(world.Particles); got > constants.ParticleMaxCount {
		t.Errorf("particle count %d exceeds cap %d", got, constants.ParticleMaxCount)
	}
}

func TestParticleSystem_SpawnNearCamera(t *testing.T) {
	world := newTestWorld(nil)
	ps := NewParticleSystem(testProjection(), world.Status)
	ps.spawn(world)

	for i, p := range world.Particles {
		maxDepth := constants.ParticleSpawnDepthMin + constants.ParticleSpawnDepthRange
		if p.Z < constants.ParticleSpawnDepthMin || p.Z >= maxDepth {
			t.Errorf("particle %d depth %v outside spawn band", i, p.Z)
		}
		if p.VZ <= 0 {
			t.Errorf("particle %d VZ %v should be positive", i, p.VZ)
		}
		if p.Life < constants.ParticleLifeMin || p.Life > constants.ParticleLifeMin+constants.ParticleLifeRange {
			t.Errorf("particle %d life %d out of range", i, p.Life)
		}
	}
}

func TestParticleSystem_TightSpreadNarrowsSpawn(t *testing.T) {
	width := func(spread float64) float64 {
		world := newTestWorld(nil)
		world.State.SetSpread(spread)
		ps := NewParticleSystem(testProjection(), world.Status)
		for i := 0; i < 40; i++ {
			ps.spawn(world)
		}
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, p := range world.Particles {
			lo = min(lo, p.X)
			hi = max(hi, p.X)
		}
		return hi - lo
	}

	tight, wide := width(0), width(1)
	if tight >= wide {
		t.Errorf("tight spread width %v should be narrower than wide %v", tight, wide)
	}
	if tight > 2*constants.ParticleSpawnJitterMin+1e-9 {
		t.Errorf("tight spread width %v exceeds jitter %v", tight, 2*constants.ParticleSpawnJitterMin)
	}
}

func TestParticleSystem_RecycleIntoNearBand(t *testing.T) {
	world := newTestWorld(nil)
	ps := NewParticleSystem(testProjection(), world.Status)

	p := &components.Particle{Z: constants.ParticleFarDepth - 0.01, VZ: 1, Life: 10}
	world.Particles = append(world.Particles, p)

	ps.Update(world)

	if world.Particles[0] != p {
		t.Fatal("recycled particle lost its identity")
	}
	if p.Z < constants.ParticleRecycleDepthMin || p.Z >= constants.ParticleRecycleDepthMin+constants.ParticleRecycleDepthRange {
		t.Errorf("recycled depth %v outside [2, 6)", p.Z)
	}
	if p.Life < constants.ParticleLifeMin-1 {
		t.Errorf("recycled particle should get a fresh lifetime, got %d", p.Life)
	}
}

func TestParticleSystem_SweepRemovesExpired(t *testing.T) {
	world := newTestWorld(nil)
	ps := NewParticleSystem(testProjection(), world.Status)

	keep := &components.Particle{Life: 3}
	world.Particles = append(world.Particles,
		&components.Particle{Life: 0},
		keep,
		&components.Particle{Life: -2},
	)

	ps.Sweep(world)

	if len(world.Particles) != 1 || world.Particles[0] != keep {
		t.Errorf("Sweep left %d particles, want only the live one", len(world.Particles))
	}
	if got := ps.statParticles.Load(); got != 1 {
		t.Errorf("status particles = %d, want 1", got)
	}
}

func TestParticleSystem_SteersTowardPointer(t *testing.T) {
	world := newTestWorld(nil)
	world.State.SetSpread(0)
	world.State.SetPointer(1)
	ps := NewParticleSystem(testProjection(), world.Status)

	p := &components.Particle{X: 0, Z: 5, Life: 100}
	world.Particles = append(world.Particles, p)

	ps.Update(world)

	if p.X <= 0 {
		t.Errorf("particle X = %v, expected drift toward the right pointer", p.X)
	}
}

func TestParticleSystem_WallIsInelastic(t *testing.T) {
	world := newTestWorld(nil)
	world.State.SetWind(constants.MaxWind, 0, 0)
	ps := NewParticleSystem(testProjection(), world.Status)

	p := &components.Particle{X: constants.LaneHalfWidth - 0.01, Z: 5, VX: 0.3, Life: 100}
	world.Particles = append(world.Particles, p)

	ps.Update(world)

	if p.X != constants.LaneHalfWidth {
		t.Errorf("X = %v, want clamped to wall %v", p.X, constants.LaneHalfWidth)
	}
	if p.VX > constants.ParticleMaxLateralVelocity*constants.ParticleWallDamping+1e-9 {
		t.Errorf("VX = %v, want heavily damped", p.VX)
	}
}

// Invariants that hold after every tick for any input sequence
func TestParticleSystem_Invariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		world := newTestWorld(nil)
		ps := NewParticleSystem(testProjection(), world.Status)

		ticks := rapid.IntRange(1, 200).Draw(t, "ticks")
		for i := 0; i < ticks; i++ {
			world.State.SetWind(
				rapid.Float64Range(-5, 5).Draw(t, "wx"),
				0,
				rapid.Float64Range(-5, 5).Draw(t, "wz"),
			)
			world.State.SetSpread(rapid.Float64Range(-0.5, 1.5).Draw(t, "spread"))
			world.State.SetPointer(rapid.Float64Range(-0.5, 1.5).Draw(t, "pointer"))

			ps.Update(world)

			for _, p := range world.Particles {
				if math.Abs(p.VX) > constants.ParticleMaxLateralVelocity+1e-12 {
					t.Fatalf("tick %d: |VX| = %v exceeds clamp", i, math.Abs(p.VX))
				}
				if p.Z > constants.ParticleFarDepth {
					t.Fatalf("tick %d: depth %v beyond far bound", i, p.Z)
				}
				if p.Z < constants.ParticleMinDepth {
					t.Fatalf("tick %d: depth %v nearer than min", i, p.Z)
				}
				if math.Abs(p.X) > constants.LaneHalfWidth {
					t.Fatalf("tick %d: lateral %v outside lane", i, p.X)
				}
			}
			ps.Sweep(world)
		}
	})
}
