package constants

// Particle Field Limits
const (
	// ParticleMaxCount caps live particles; spawning stops at the cap
	ParticleMaxCount = 700

	// ParticleSpawnPerTick is the burst size created each tick
	ParticleSpawnPerTick = 5
)

// Particle Spawn
const (
	// ParticleSpawnDepthMin is the nearest spawn depth
	ParticleSpawnDepthMin = 2.0
	// ParticleSpawnDepthRange is added randomly to ParticleSpawnDepthMin
	ParticleSpawnDepthRange = 1.0

	// ParticleRecycleDepthMin and ParticleRecycleDepthRange give the recycle interval [2, 6)
	ParticleRecycleDepthMin   = 2.0
	ParticleRecycleDepthRange = 4.0

	// ParticleSpawnJitterMin is the spawn half-width at spread 0 (tight stream)
	ParticleSpawnJitterMin = 0.3
	// ParticleSpawnJitterSpread is added to the half-width at spread 1 (dispersed cloud)
	ParticleSpawnJitterSpread = 4.5

	// ParticleInitialVZMin and ParticleInitialVZRange bound the initial forward velocity
	ParticleInitialVZMin   = 0.02
	ParticleInitialVZRange = 0.06

	// ParticleInitialVXRange is the half-range of the random initial lateral velocity
	ParticleInitialVXRange = 0.05

	// ParticleLifeMin and ParticleLifeRange bound particle lifetime in ticks
	ParticleLifeMin   = 150
	ParticleLifeRange = 90
)

// Particle Physics (per tick)
const (
	// ParticleWindGain converts the wind vector into per-tick acceleration
	ParticleWindGain = 0.03

	// ParticleForwardDrift is the constant depth acceleration
	ParticleForwardDrift = 0.004

	// ParticleDrag is the multiplicative velocity retention per tick
	ParticleDrag = 0.94

	// ParticleMaxLateralVelocity clamps |VX|
	ParticleMaxLateralVelocity = 0.3

	// ParticleFarDepth is the recycle bound; no particle is beyond it after a tick
	ParticleFarDepth = 40.0

	// ParticleMinDepth is the nearest allowed depth
	ParticleMinDepth = 1.0

	// ParticleWallDamping is the VX retention after hitting a lane wall
	ParticleWallDamping = 0.1
)

// Particle Steering (fingers close ⇒ stream bends to the pointer)
const (
	// SteerSpreadThreshold enables steering below this spread
	SteerSpreadThreshold = 0.6

	// SteerStrengthMax is the blend factor at spread 0
	SteerStrengthMax = 0.35

	// SteerGain converts lateral distance to desired VX
	SteerGain = 0.08

	// SteerLockSpread enables the heavy anti-oscillation damping below this spread
	SteerLockSpread = 0.15

	// SteerLockDamping is the VX retention when locked
	SteerLockDamping = 0.5
)

// ParticleGlyphs is the sand alphabet
var ParticleGlyphs = []rune{'.', ',', ':', ';', '\'', '`', '*'}
