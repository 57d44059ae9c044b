package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sandstorm/constants"
	"github.com/lixenwraith/sandstorm/engine"
	"github.com/lixenwraith/sandstorm/render"
)

// WaveAnnounceRenderer fades the wave banner in and out while the announce timer runs
type WaveAnnounceRenderer struct {
	world *engine.World
}

// NewWaveAnnounceRenderer creates a wave banner renderer
func NewWaveAnnounceRenderer(world *engine.World) *WaveAnnounceRenderer {
	return &WaveAnnounceRenderer{world: world}
}

// IsVisible returns true while the banner timer runs
func (r *WaveAnnounceRenderer) IsVisible() bool {
	return r.world.State.AnnounceTimer > 0 && !r.world.State.GameOver
}

// Render draws the banner with an alpha ramping up over the first quarter and down over the last
func (r *WaveAnnounceRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	buf.SetWriteMask(render.MaskUI)

	t := float64(r.world.State.AnnounceTimer) / constants.WaveAnnounceTicks
	alpha := announceAlpha(t)
	color := render.RgbBackground.Blend(render.RgbAnnounce, alpha)

	y := ctx.ScreenHeight / 5
	buf.DrawTextCentered(y, fmt.Sprintf("W A V E   %d", r.world.State.WaveIndex+1), color, tcell.AttrBold)
}

// announceAlpha maps remaining fraction t (1 at start, 0 at end) to banner opacity
func announceAlpha(t float64) float64 {
	return min(1, (1-t)*4, t*4)
}
