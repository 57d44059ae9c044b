package render

import "github.com/lixenwraith/sandstorm/vmath"

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Frame    int64
	IsPaused bool
	IsDebug  bool

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Projection for the current screen size
	Projection vmath.Projection
}

// NewRenderContext creates a context for a screen of the given size
func NewRenderContext(frame int64, width, height int, paused, debug bool) RenderContext {
	return RenderContext{
		Frame:        frame,
		IsPaused:     paused,
		IsDebug:      debug,
		ScreenWidth:  width,
		ScreenHeight: height,
		Projection:   vmath.NewProjection(width, height),
	}
}

// Project maps a world point to the nearest cell plus its perspective factor
func (rc *RenderContext) Project(x, depth float64) (int, int, float64) {
	sx, sy, f := rc.Projection.Project(x, depth)
	return int(sx + 0.5), int(sy + 0.5), f
}
