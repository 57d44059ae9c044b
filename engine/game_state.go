package engine

import (
	"github.com/lixenwraith/sandstorm/components"
	"github.com/lixenwraith/sandstorm/constants"
	"github.com/lixenwraith/sandstorm/vmath"
)

// GameState is the simulation-owned state of one game
// Mutated only by the simulation tick and the clamped setters below
type GameState struct {
	// Progress
	Score        int
	PlayerHealth int

	// Wave scheduler
	WaveIndex     int // Absolute wave number, keeps growing through final-wave repeats
	WaveTimer     int // Ticks since current wave start
	Pending       []components.PendingSpawn
	HealthMult    float64
	BetweenWaves  bool
	BetweenTimer  int // Ticks left in the between-waves period
	AnnounceTimer int // Ticks left on the wave banner

	// Input, sampled once per frame
	WindX   float64 // Lateral
	WindY   float64 // Vertical, carried but unused by physics
	WindZ   float64 // Depth
	Spread  float64 // 0 fingers closed, 1 wide open
	Pointer float64 // 0 left, 1 right

	// Flags
	Paused   bool
	Debug    bool
	GameOver bool

	// Counters
	Frame   int64
	Kills   int
	Attacks int
}

// NewGameState creates a state ready for wave 0
func NewGameState() *GameState {
	s := &GameState{}
	s.Reset()
	return s
}

// Reset restores initial values; Debug survives a reset
func (s *GameState) Reset() {
	debug := s.Debug
	*s = GameState{
		PlayerHealth: constants.PlayerMaxHealth,
		HealthMult:   1,
		Spread:       constants.DefaultSpread,
		Pointer:      constants.DefaultPointer,
		Debug:        debug,
		Pending:      s.Pending[:0],
	}
}

// SetWind stores the wind vector, each component clamped to ±MaxWind, NaN to 0
func (s *GameState) SetWind(x, y, z float64) {
	s.WindX = vmath.ClampOr(x, -constants.MaxWind, constants.MaxWind, 0)
	s.WindY = vmath.ClampOr(y, -constants.MaxWind, constants.MaxWind, 0)
	s.WindZ = vmath.ClampOr(z, -constants.MaxWind, constants.MaxWind, 0)
}

// SetSpread stores spread clamped to [0, 1], NaN maps to wide open
func (s *GameState) SetSpread(spread float64) {
	s.Spread = vmath.ClampOr(spread, 0, 1, constants.DefaultSpread)
}

// SetPointer stores pointer clamped to [0, 1], NaN maps to center
func (s *GameState) SetPointer(pointer float64) {
	s.Pointer = vmath.ClampOr(pointer, 0, 1, constants.DefaultPointer)
}

// DamagePlayer subtracts damage from player health, flooring at 0
func (s *GameState) DamagePlayer(damage int) {
	s.PlayerHealth = vmath.ClampInt(s.PlayerHealth-damage, 0, constants.PlayerMaxHealth)
}

// HealPlayer adds amount to player health, capped at PlayerMaxHealth
func (s *GameState) HealPlayer(amount int) {
	s.PlayerHealth = vmath.ClampInt(s.PlayerHealth+amount, 0, constants.PlayerMaxHealth)
}

// AddScore increases score; negative amounts are ignored to keep it monotonic
func (s *GameState) AddScore(points int) {
	if points > 0 {
		s.Score += points
	}
}
