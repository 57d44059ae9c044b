package renderers

import (
	"math"
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sandstorm/components"
	"github.com/lixenwraith/sandstorm/constants"
	"github.com/lixenwraith/sandstorm/engine"
	"github.com/lixenwraith/sandstorm/render"
	"github.com/lixenwraith/sandstorm/vmath"
)

// EnemyRenderer draws enemies far-to-near with shadow, shield glow, flash and health bar
type EnemyRenderer struct {
	world *engine.World
	order []*components.Enemy
}

// NewEnemyRenderer creates an enemy renderer for world
func NewEnemyRenderer(world *engine.World) *EnemyRenderer {
	return &EnemyRenderer{world: world}
}

// Render draws every live enemy
func (r *EnemyRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	r.order = append(r.order[:0], r.world.Enemies...)
	slices.SortFunc(r.order, func(a, b *components.Enemy) int {
		switch {
		case a.Z > b.Z:
			return -1
		case a.Z < b.Z:
			return 1
		}
		return 0
	})

	for _, e := range r.order {
		r.drawEnemy(ctx, buf, e)
	}
	clear(r.order)
}

func (r *EnemyRenderer) drawEnemy(ctx render.RenderContext, buf *render.RenderBuffer, e *components.Enemy) {
	sx, floorY, f := ctx.Project(e.X, e.Z)
	lod := lodFor(f, e.Scale)
	lines := bodyLines(e.Kind, lod)
	w := bodyWidth(lines)
	h := len(lines)
	left := sx - w/2
	top := floorY - h

	// Shadow on the floor row under the body
	buf.SetWriteMask(render.MaskEnemy)
	for x := left; x < left+w; x++ {
		buf.BlendBg(x, floorY, render.RgbShadow, 0.6)
	}

	if e.Shield != nil && e.Shield.Health > 0 {
		drawShieldGlow(buf, e.Shield, sx, top, w, h)
	}

	color := bodyColor(e)
	attrs := tcell.AttrNone
	if lod == lodNear {
		attrs = tcell.AttrBold
	}
	buf.SetWriteMask(render.MaskEnemy)
	for row, line := range lines {
		x := left
		for _, ch := range line {
			if ch != ' ' {
				buf.SetFgOnly(x, top+row, ch, color, attrs)
			}
			x++
		}
	}

	if e.Health < e.MaxHealth && lod != lodFar {
		barWidth := 3
		if lod == lodNear {
			barWidth = constants.EnemyHealthBarWidth
		}
		drawHealthBar(buf, sx-barWidth/2, top-1, barWidth, e.Health/e.MaxHealth)
	}
}

// bodyColor tints the kind color toward white while the hit flash runs
func bodyColor(e *components.Enemy) render.RGB {
	base := enemyArtTable[e.Kind].color
	if e.Flash <= 0 {
		return base
	}
	return base.Blend(render.RgbEnemyFlash, float64(e.Flash)/constants.EnemyFlashTicks)
}

// drawShieldGlow blends an ellipse behind the body, brighter toward the rim
func drawShieldGlow(buf *render.RenderBuffer, s *components.ShieldState, cx, top, w, h int) {
	buf.SetWriteMask(render.MaskShield)

	rx := float64(w)/2 + constants.ShieldGlowPadX
	ry := float64(h)/2 + constants.ShieldGlowPadY
	cy := float64(top) + float64(h)/2 - 0.5

	color := render.RgbShieldGlow
	alpha := constants.ShieldGlowAlpha * (0.3 + 0.7*s.Fraction())
	if s.Flash > 0 {
		color = render.RgbShieldFlash
		alpha = constants.ShieldGlowAlpha + 0.3*float64(s.Flash)/constants.ShieldFlashTicks
	}

	rim := color.Scale(min(alpha+constants.ShieldRimBoost, 1))

	for y := int(math.Floor(cy - ry)); y <= int(math.Ceil(cy+ry)); y++ {
		for x := int(math.Floor(float64(cx) - rx)); x <= int(math.Ceil(float64(cx)+rx)); x++ {
			dx, dy := float64(x-cx), float64(y)-cy
			if !vmath.EllipseContains(dx, dy, rx, ry) {
				continue
			}
			if vmath.EllipseDistSq(dx, dy, rx, ry) >= constants.ShieldRimDistSq {
				buf.Set(x, y, 0, render.RGB{}, rim, render.BlendMax, tcell.AttrNone)
				continue
			}
			buf.BlendBg(x, y, color, vmath.EllipseAlpha(dx, dy, rx, ry, 0.4, alpha))
		}
	}
}

// drawHealthBar draws a filled/empty bar of width cells
func drawHealthBar(buf *render.RenderBuffer, x, y, width int, ratio float64) {
	buf.SetWriteMask(render.MaskEnemy)
	filled := int(math.Round(float64(width) * ratio))
	if ratio > 0 && filled == 0 {
		filled = 1
	}
	color := healthColor(ratio)
	for i := 0; i < width; i++ {
		if i < filled {
			buf.SetFgOnly(x+i, y, '█', color, tcell.AttrNone)
		} else {
			buf.SetFgOnly(x+i, y, '░', render.RgbHealthEmpty, tcell.AttrNone)
		}
	}
}

// healthColor maps a health ratio to green, yellow or red
func healthColor(ratio float64) render.RGB {
	switch {
	case ratio > 0.6:
		return render.RgbHealthHigh
	case ratio > 0.3:
		return render.RgbHealthMid
	default:
		return render.RgbHealthLow
	}
}
