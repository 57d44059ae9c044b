package renderers

import (
	"github.com/lixenwraith/sandstorm/constants"
	"github.com/lixenwraith/sandstorm/render"
)

// LaneGridRenderer draws lane lines converging on the horizon
type LaneGridRenderer struct{}

// NewLaneGridRenderer creates a lane grid renderer
func NewLaneGridRenderer() *LaneGridRenderer {
	return &LaneGridRenderer{}
}

// Render projects LaneGridSamples depth samples per lane line, then cross lines at fixed depths
func (r *LaneGridRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	buf.SetWriteMask(render.MaskScene)

	// Cross lines first so lane lines stay on top
	for depth := constants.LaneGridRowDepth; depth < constants.ParticleFarDepth; depth += constants.LaneGridRowDepth {
		left, y, _ := ctx.Project(-constants.LaneHalfWidth, depth)
		right, _, _ := ctx.Project(constants.LaneHalfWidth, depth)
		for x := left + 1; x < right; x++ {
			buf.SetFgOnly(x, y, '·', render.RgbGridFaint, 0)
		}
	}

	lines := constants.LaneLineCount
	step := 2 * constants.LaneHalfWidth / float64(lines-1)
	near := constants.ParticleMinDepth
	span := constants.ParticleFarDepth - near

	for i := 0; i < lines; i++ {
		x := -constants.LaneHalfWidth + float64(i)*step
		glyph := laneGlyph(x)
		for s := 0; s < constants.LaneGridSamples; s++ {
			// Quadratic spacing packs samples near the camera where lines spread out
			t := float64(s) / float64(constants.LaneGridSamples-1)
			depth := near + span*t*t
			sx, sy, _ := ctx.Project(x, depth)
			buf.SetFgOnly(sx, sy, glyph, render.RgbGrid, 0)
		}
	}
}

// laneGlyph picks the slant of a lane line from its side of the lane
func laneGlyph(x float64) rune {
	switch {
	case x < -0.01:
		return '/'
	case x > 0.01:
		return '\\'
	default:
		return '|'
	}
}
