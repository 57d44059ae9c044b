package renderers

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sandstorm/constants"
	"github.com/lixenwraith/sandstorm/engine"
	"github.com/lixenwraith/sandstorm/render"
)

// HUDRenderer draws wave, score, player health and remaining enemies on the top row
type HUDRenderer struct {
	world *engine.World
}

// NewHUDRenderer creates a HUD renderer for world
func NewHUDRenderer(world *engine.World) *HUDRenderer {
	return &HUDRenderer{world: world}
}

// Render draws the status line
func (r *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	buf.SetWriteMask(render.MaskUI)
	st := r.world.State

	x := buf.DrawText(1, 0, "WAVE ", render.RgbHudLabel, tcell.AttrNone)
	x = buf.DrawText(x, 0, fmt.Sprintf("%d", st.WaveIndex+1), render.RgbHudText, tcell.AttrBold)
	x = buf.DrawText(x+2, 0, "SCORE ", render.RgbHudLabel, tcell.AttrNone)
	x = buf.DrawText(x, 0, fmt.Sprintf("%d", st.Score), render.RgbHudText, tcell.AttrBold)

	x = buf.DrawText(x+2, 0, "HP ", render.RgbHudLabel, tcell.AttrNone)
	ratio := float64(st.PlayerHealth) / constants.PlayerMaxHealth
	drawHealthBar(buf, x, 0, constants.HUDHealthBarWidth, ratio)
	buf.SetWriteMask(render.MaskUI)
	x = buf.DrawText(x+constants.HUDHealthBarWidth+1, 0, fmt.Sprintf("%3d", st.PlayerHealth), healthColor(ratio), tcell.AttrNone)

	remaining := len(r.world.Enemies) + len(st.Pending)
	if remaining > 0 {
		dots := strings.Repeat("●", min(remaining, constants.HUDMaxEnemyDots))
		if remaining > constants.HUDMaxEnemyDots {
			dots += "+"
		}
		buf.DrawText(x+2, 0, dots, render.RgbEnemyDot, tcell.AttrNone)
	}
}
