package renderers

import (
	"github.com/lixenwraith/sandstorm/render"
)

// BackgroundRenderer paints the sky and the sand floor gradients
type BackgroundRenderer struct{}

// NewBackgroundRenderer creates a background renderer
func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{}
}

// Render fills every cell: sky above the horizon, floor below it
func (r *BackgroundRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	buf.SetWriteMask(render.MaskScene)

	horizon := ctx.Projection.HorizonY()
	for y := 0; y < ctx.ScreenHeight; y++ {
		var bg render.RGB
		fy := float64(y)
		if fy < horizon {
			t := fy / max(horizon, 1)
			bg = render.RgbSkyTop.Blend(render.RgbSkyHorizon, t)
		} else {
			span := max(float64(ctx.ScreenHeight)-horizon, 1)
			t := (fy - horizon) / span
			bg = render.RgbFloorFar.Blend(render.RgbFloorNear, t)
		}
		for x := 0; x < ctx.ScreenWidth; x++ {
			buf.SetBgOnly(x, y, bg)
		}
	}
}

// HorizonRenderer draws the vanishing line
type HorizonRenderer struct{}

// NewHorizonRenderer creates a horizon renderer
func NewHorizonRenderer() *HorizonRenderer {
	return &HorizonRenderer{}
}

// Render draws a full-width line on the horizon row
func (r *HorizonRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	buf.SetWriteMask(render.MaskScene)
	y := int(ctx.Projection.HorizonY())
	for x := 0; x < ctx.ScreenWidth; x++ {
		buf.SetFgOnly(x, y, '─', render.RgbHorizon, 0)
	}
}
