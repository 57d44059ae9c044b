package render

// Render masks categorize buffer cells for selective post-processing
// Masks are bitfields allowing combination via OR and exclusion via XOR
const (
	MaskNone   uint8 = 0
	MaskScene  uint8 = 1 << 0 // Sky, floor, horizon, lane grid
	MaskSand   uint8 = 1 << 1 // Particles
	MaskEnemy  uint8 = 1 << 2 // Enemy bodies, shadows, health bars
	MaskShield uint8 = 1 << 3 // Shield glow
	MaskUI     uint8 = 1 << 4 // HUD, banners, overlays
	MaskAll    uint8 = 0xFF
)
