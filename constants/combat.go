package constants

// Particle Hits
const (
	// HitDamageMax is the damage of a hit at spread 0; spread 1 deals 0
	HitDamageMax = 3.0

	// ShieldFocusSpread is the spread below which hits can break shields
	ShieldFocusSpread = 0.35
)
