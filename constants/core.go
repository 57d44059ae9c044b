package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the frame interval (~60 FPS); one simulation tick runs per frame
	FrameUpdateInterval = 16 * time.Millisecond

	// TicksPerSecond is the nominal tick rate used to convert tick counters for display
	TicksPerSecond = 60
)

// Player
const (
	// PlayerMaxHealth is the upper clamp for player health
	PlayerMaxHealth = 100

	// KillHeal is the health restored to the player when an enemy dies
	KillHeal = 2
)

// Input Defaults
const (
	// DefaultSpread is the spread value used before any input arrives (wide open hand)
	DefaultSpread = 1.0

	// DefaultPointer is the centered lateral aim
	DefaultPointer = 0.5
)

// Input Limits
const (
	// MaxWind bounds each wind component after clamping
	MaxWind = 2.0
)
