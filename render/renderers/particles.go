package renderers

import (
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sandstorm/components"
	"github.com/lixenwraith/sandstorm/constants"
	"github.com/lixenwraith/sandstorm/engine"
	"github.com/lixenwraith/sandstorm/render"
)

// ParticleRenderer draws sand far-to-near with lagged display positions
// It owns the particle Display* fields and never touches physics fields
type ParticleRenderer struct {
	world *engine.World
	order []*components.Particle
}

// NewParticleRenderer creates a particle renderer for world
func NewParticleRenderer(world *engine.World) *ParticleRenderer {
	return &ParticleRenderer{
		world: world,
		order: make([]*components.Particle, 0, constants.ParticleMaxCount),
	}
}

// Render smooths each display position toward its projection and draws it
func (r *ParticleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	buf.SetWriteMask(render.MaskSand)

	r.order = append(r.order[:0], r.world.Particles...)
	slices.SortFunc(r.order, func(a, b *components.Particle) int {
		switch {
		case a.Z > b.Z:
			return -1
		case a.Z < b.Z:
			return 1
		}
		return 0
	})

	for _, p := range r.order {
		if !p.Alive() {
			continue
		}
		sx, sy, f := ctx.Projection.Project(p.X, p.Z)
		smoothDisplay(p, sx, sy, f, !ctx.IsPaused)

		x := int(p.DisplayX + 0.5)
		y := int(p.DisplayY + 0.5)
		color, attrs := sandStyle(p.DisplaySize)
		buf.SetFgOnly(x, y, p.Glyph, color, attrs)
		if p.DisplaySize >= constants.ParticleBrightSize/3 {
			// Grains sharing a cell accumulate glow
			buf.Set(x, y, 0, render.RGB{}, render.RgbSandGlow, render.BlendAdd, tcell.AttrNone)
		}
	}
	clear(r.order)
}

// smoothDisplay applies the first-order lag filter; the first frame snaps
func smoothDisplay(p *components.Particle, sx, sy, size float64, advance bool) {
	if !p.HasDisplay {
		p.DisplayX, p.DisplayY, p.DisplaySize = sx, sy, size
		p.HasDisplay = true
		return
	}
	if !advance {
		return
	}
	k := constants.ParticleSmoothing
	p.DisplayX += (sx - p.DisplayX) * k
	p.DisplayY += (sy - p.DisplayY) * k
	p.DisplaySize += (size - p.DisplaySize) * k
}

// sandStyle brightens near grains
func sandStyle(size float64) (render.RGB, tcell.AttrMask) {
	switch {
	case size >= constants.ParticleBrightSize:
		return render.RgbSandBright, tcell.AttrBold
	case size >= constants.ParticleBrightSize/3:
		return render.RgbSand, tcell.AttrNone
	default:
		return render.RgbSandDim, tcell.AttrNone
	}
}
