package components

// ShieldState is the shielded-enemy behavior payload
// While Health > 0 the enemy core only takes damage that overflows a focused hit
type ShieldState struct {
	Health float64
	Max    float64
	Flash  int // Impact flash ticks remaining, visual only
}

// Absorb drains the pool by damage and returns the overflow that passes through
func (s *ShieldState) Absorb(damage float64) (overflow float64) {
	if damage <= 0 {
		return 0
	}
	if damage <= s.Health {
		s.Health -= damage
		return 0
	}
	overflow = damage - s.Health
	s.Health = 0
	return overflow
}

// Fraction returns remaining shield in [0, 1]
func (s *ShieldState) Fraction() float64 {
	if s.Max <= 0 {
		return 0
	}
	return s.Health / s.Max
}
