package components

// Particle is one grain of sand in the field
// X/Z/VX/VZ/Life are physics state; Display* fields belong to the renderer
type Particle struct {
	X     float64 // Lateral world position
	Z     float64 // Depth, larger is farther from the camera
	VX    float64 // Lateral velocity per tick
	VZ    float64 // Depth velocity per tick
	Life  int     // Remaining ticks, removed at the end of the tick when <= 0
	Glyph rune

	// Interpolated screen position, lags the projected physics position
	DisplayX    float64
	DisplayY    float64
	DisplaySize float64
	HasDisplay  bool
}

// Alive reports whether the particle still takes part in the simulation
func (p *Particle) Alive() bool {
	return p.Life > 0
}
