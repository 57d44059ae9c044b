package render

// Scene
var (
	RgbBackground = RGB{26, 27, 38}   // Tokyo Night background
	RgbSkyTop     = RGB{16, 16, 28}   // Sky above the horizon
	RgbSkyHorizon = RGB{48, 36, 58}   // Dusky haze at the vanishing line
	RgbFloorNear  = RGB{58, 44, 30}   // Sand floor at the camera
	RgbFloorFar   = RGB{30, 26, 30}   // Sand floor at the horizon
	RgbHorizon    = RGB{180, 120, 90} // Horizon line
	RgbGrid       = RGB{90, 70, 60}   // Lane lines
	RgbGridFaint  = RGB{60, 48, 46}   // Cross lines
)

// Particles
var (
	RgbSandBright = RGB{255, 220, 150}
	RgbSand       = RGB{220, 180, 110}
	RgbSandDim    = RGB{140, 110, 70}
	RgbSandGlow   = RGB{22, 16, 6} // Added per grain to the cell background
)

// Enemies
var (
	RgbEnemySmall    = RGB{150, 220, 120}
	RgbEnemyNormal   = RGB{230, 90, 90}
	RgbEnemyBig      = RGB{200, 80, 200}
	RgbEnemyDodger   = RGB{90, 200, 230}
	RgbEnemyRusher   = RGB{255, 160, 40}
	RgbEnemyShielded = RGB{140, 150, 255}
	RgbEnemyFlash    = RGB{255, 255, 255}
	RgbShadow        = RGB{12, 10, 14}
	RgbShieldGlow    = RGB{80, 140, 255}
	RgbShieldFlash   = RGB{200, 230, 255}
)

// UI
var (
	RgbHudText     = RGB{220, 220, 230}
	RgbHudLabel    = RGB{130, 130, 150}
	RgbHealthHigh  = RGB{80, 220, 100}
	RgbHealthMid   = RGB{240, 200, 60}
	RgbHealthLow   = RGB{240, 70, 60}
	RgbHealthEmpty = RGB{50, 50, 60}
	RgbEnemyDot    = RGB{230, 90, 90}
	RgbAnnounce    = RGB{255, 210, 120}
	RgbOverlayBg   = RGB{10, 10, 16}
	RgbOverlayText = RGB{255, 255, 255}
	RgbGameOver    = RGB{255, 80, 80}
	RgbDebugText   = RGB{150, 200, 150}
)
