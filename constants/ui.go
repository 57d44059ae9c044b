package constants

// Enemy Body Level of Detail (by perspective factor × enemy scale)
const (
	// LODNear selects the full body glyph
	LODNear = 0.45

	// LODMid selects the compact body glyph
	LODMid = 0.15
)

// Rendering
const (
	// ParticleSmoothing is the first-order lag factor for displayed particle positions
	ParticleSmoothing = 0.35

	// ParticleBrightSize is the perspective factor above which particles draw bold
	ParticleBrightSize = 0.5

	// HUDHealthBarWidth is the player HP bar width in cells
	HUDHealthBarWidth = 20

	// HUDMaxEnemyDots caps the remaining-enemy dots
	HUDMaxEnemyDots = 16

	// EnemyHealthBarWidth is the enemy HP bar width in cells at LOD near
	EnemyHealthBarWidth = 7

	// ShieldGlowPadX and ShieldGlowPadY pad the shield ellipse around the body
	ShieldGlowPadX = 2
	ShieldGlowPadY = 1

	// ShieldGlowAlpha is the peak background alpha of the shield ellipse
	ShieldGlowAlpha = 0.35

	// ShieldRimDistSq is the normalized ellipse distance where the highlighted rim begins
	ShieldRimDistSq = 0.6
	// ShieldRimBoost is added to the glow alpha on the rim
	ShieldRimBoost = 0.3
)
