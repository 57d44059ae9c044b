package renderers

import (
	"github.com/lixenwraith/sandstorm/render"
)

// drawBox fills a bordered window centered on screen and returns its top-left corner
func drawBox(ctx render.RenderContext, buf *render.RenderBuffer, w, h int) (int, int) {
	w = min(w, ctx.ScreenWidth)
	h = min(h, ctx.ScreenHeight)
	x := (ctx.ScreenWidth - w) / 2
	y := (ctx.ScreenHeight - h) / 2

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			buf.SetWithBg(x+col, y+row, ' ', render.RgbOverlayText, render.RgbOverlayBg)
		}
	}

	// Corners
	buf.SetWithBg(x, y, '╔', render.RgbHudLabel, render.RgbOverlayBg)
	buf.SetWithBg(x+w-1, y, '╗', render.RgbHudLabel, render.RgbOverlayBg)
	buf.SetWithBg(x, y+h-1, '╚', render.RgbHudLabel, render.RgbOverlayBg)
	buf.SetWithBg(x+w-1, y+h-1, '╝', render.RgbHudLabel, render.RgbOverlayBg)

	for i := 1; i < w-1; i++ {
		buf.SetWithBg(x+i, y, '═', render.RgbHudLabel, render.RgbOverlayBg)
		buf.SetWithBg(x+i, y+h-1, '═', render.RgbHudLabel, render.RgbOverlayBg)
	}
	for i := 1; i < h-1; i++ {
		buf.SetWithBg(x, y+i, '║', render.RgbHudLabel, render.RgbOverlayBg)
		buf.SetWithBg(x+w-1, y+i, '║', render.RgbHudLabel, render.RgbOverlayBg)
	}
	return x, y
}
