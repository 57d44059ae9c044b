package components

import (
	"fmt"
	"math/rand"

	"github.com/lixenwraith/sandstorm/constants"
)

// EnemyKind is the closed set of enemy types
type EnemyKind uint8

const (
	EnemySmall EnemyKind = iota
	EnemyNormal
	EnemyBig
	EnemyDodger
	EnemyRusher
	EnemyShielded

	enemyKindCount
)

var enemyKindNames = [enemyKindCount]string{
	EnemySmall:    "small",
	EnemyNormal:   "normal",
	EnemyBig:      "big",
	EnemyDodger:   "dodger",
	EnemyRusher:   "rusher",
	EnemyShielded: "shielded",
}

// String returns the lowercase kind name used in wave files
func (k EnemyKind) String() string {
	if k < enemyKindCount {
		return enemyKindNames[k]
	}
	return fmt.Sprintf("EnemyKind(%d)", uint8(k))
}

// Valid reports whether k is one of the defined kinds
func (k EnemyKind) Valid() bool {
	return k < enemyKindCount
}

// ParseEnemyKind maps a wave-file name to its kind
func ParseEnemyKind(name string) (EnemyKind, error) {
	for k, n := range enemyKindNames {
		if n == name {
			return EnemyKind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown enemy kind %q", name)
}

// AllEnemyKinds returns every kind in declaration order
func AllEnemyKinds() []EnemyKind {
	kinds := make([]EnemyKind, enemyKindCount)
	for i := range kinds {
		kinds[i] = EnemyKind(i)
	}
	return kinds
}

// KindStats is the per-kind dispatch entry
type KindStats struct {
	Health float64 // Base health before wave scaling
	Speed  float64 // Depth units per tick (rusher: base speed)
	Radius float64 // Collision radius in world units at Scale 1
	Scale  float64 // Render and collision scale
	Damage int     // Lump-sum damage dealt on reaching attack depth
	Score  int     // Score awarded on kill
	Shield float64 // Shield pool, zero for unshielded kinds
}

// EnemyStats is indexed by EnemyKind
var EnemyStats = [enemyKindCount]KindStats{
	EnemySmall:    {Health: 4, Speed: 0.085, Radius: 0.7, Scale: 0.8, Damage: 5, Score: 10},
	EnemyNormal:   {Health: 10, Speed: 0.06, Radius: 0.9, Scale: 1.0, Damage: 15, Score: 25},
	EnemyBig:      {Health: 32, Speed: 0.035, Radius: 1.4, Scale: 1.4, Damage: 30, Score: 60},
	EnemyDodger:   {Health: 8, Speed: 0.05, Radius: 0.8, Scale: 0.9, Damage: 12, Score: 40},
	EnemyRusher:   {Health: 8, Speed: 0.025, Radius: 0.8, Scale: 0.9, Damage: 20, Score: 45},
	EnemyShielded: {Health: 14, Speed: 0.04, Radius: 1.1, Scale: 1.1, Damage: 20, Score: 70, Shield: 12},
}

// Stats returns the dispatch entry for k
func (k EnemyKind) Stats() KindStats {
	return EnemyStats[k]
}

// Strafe is the dodger behavior payload
type Strafe struct {
	Dir    float64 // +1 right, -1 left
	Speed  float64 // Lateral units per tick
	Timer  int     // Ticks since last reversal
	Period int     // Ticks between reversals
}

// Rush is the rusher behavior payload
type Rush struct {
	BaseSpeed float64
	Boost     float64 // Speed multiplier gained at attack depth, quadratic in progress
}

// Enemy is a live enemy in the lane
// Exactly one of Strafe/Rush/Shield is set, matching Kind, or none for plain kinds
type Enemy struct {
	Kind      EnemyKind
	X         float64
	Z         float64
	Radius    float64
	Health    float64
	MaxHealth float64
	Flash     int // Hit-flash ticks remaining, visual only
	Scale     float64
	Speed     float64

	Strafe *Strafe
	Rush   *Rush
	Shield *ShieldState
}

// NewEnemy creates an enemy of kind at lateral x and spawn depth
// healthMult scales base health; rng picks the dodger's initial direction
func NewEnemy(kind EnemyKind, x, healthMult float64, rng *rand.Rand) *Enemy {
	stats := kind.Stats()
	maxHealth := stats.Health * healthMult
	e := &Enemy{
		Kind:      kind,
		X:         x,
		Z:         constants.EnemySpawnDepth,
		Radius:    stats.Radius * stats.Scale,
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Scale:     stats.Scale,
		Speed:     stats.Speed,
	}

	switch kind {
	case EnemyDodger:
		dir := 1.0
		if rng != nil && rng.Intn(2) == 0 {
			dir = -1
		}
		e.Strafe = &Strafe{
			Dir:    dir,
			Speed:  constants.DodgerStrafeSpeed,
			Period: constants.DodgerStrafePeriod,
		}
	case EnemyRusher:
		e.Rush = &Rush{BaseSpeed: stats.Speed, Boost: constants.RusherBoost}
	case EnemyShielded:
		e.Shield = &ShieldState{Health: stats.Shield, Max: stats.Shield}
	}
	return e
}

// Damage returns the lump-sum player damage of this enemy
func (e *Enemy) Damage() int {
	return e.Kind.Stats().Damage
}

// ScoreValue returns the points awarded on kill
func (e *Enemy) ScoreValue() int {
	return e.Kind.Stats().Score
}

// Dead reports whether the enemy's core health is depleted
func (e *Enemy) Dead() bool {
	return e.Health <= 0
}

// Shielded reports whether a charged shield still protects the core
func (e *Enemy) Shielded() bool {
	return e.Shield != nil && e.Shield.Health > 0
}
