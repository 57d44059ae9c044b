package constants

// Enemy Movement
const (
	// EnemySpawnDepth is the depth at which enemies appear
	EnemySpawnDepth = 30.0

	// AttackDepth is the depth at which an enemy hits the player and is removed
	AttackDepth = 1.5

	// EnemySpawnLateralMargin keeps random spawn positions inside the lane
	EnemySpawnLateralMargin = 1.0

	// EnemyFlashTicks is the hit-flash duration
	EnemyFlashTicks = 6

	// ShieldFlashTicks is the shield-impact flash duration
	ShieldFlashTicks = 8
)

// Dodger Behavior
const (
	// DodgerStrafeSpeed is the lateral speed per tick
	DodgerStrafeSpeed = 0.07

	// DodgerStrafePeriod is the tick count between direction reversals
	DodgerStrafePeriod = 50
)

// Rusher Behavior
const (
	// RusherBoost is the extra speed multiplier reached at the attack depth
	// speed = base * (1 + RusherBoost * progress²), progress 0 at spawn, 1 at attack depth
	RusherBoost = 3.0
)
