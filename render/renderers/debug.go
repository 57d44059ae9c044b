package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sandstorm/engine"
	"github.com/lixenwraith/sandstorm/render"
)

// DebugRenderer lists the status registry in the top-right corner
type DebugRenderer struct {
	world *engine.World
}

// NewDebugRenderer creates a debug overlay for world
func NewDebugRenderer(world *engine.World) *DebugRenderer {
	return &DebugRenderer{world: world}
}

// IsVisible returns true when the debug flag is set
func (r *DebugRenderer) IsVisible() bool {
	return r.world.State.Debug
}

// Render draws one metric per row below the HUD
func (r *DebugRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	buf.SetWriteMask(render.MaskUI)

	lines := r.world.Status.Snapshot()
	const width = 34
	x := ctx.ScreenWidth - width - 1
	for i, l := range lines {
		y := 2 + i
		if y >= ctx.ScreenHeight {
			break
		}
		text := fmt.Sprintf("%-18s %15s", l.Key, l.Value)
		for col := 0; col < width; col++ {
			buf.SetBgOnly(x+col, y, render.RgbOverlayBg)
		}
		buf.DrawText(x, y, text, render.RgbDebugText, tcell.AttrNone)
	}
}
