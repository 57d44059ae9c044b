package renderers

import (
	"strings"
	"testing"

	"github.com/lixenwraith/sandstorm/components"
	"github.com/lixenwraith/sandstorm/constants"
	"github.com/lixenwraith/sandstorm/engine"
	"github.com/lixenwraith/sandstorm/render"
)

const (
	testWidth  = 80
	testHeight = 24
)

func newTestContext() render.RenderContext {
	return render.NewRenderContext(1, testWidth, testHeight, false, false)
}

// rowText returns the runes of row y, blanks for empty cells
func rowText(buf *render.RenderBuffer, y int) string {
	w, _ := buf.Bounds()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r := buf.Get(x, y).Rune
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func screenText(buf *render.RenderBuffer) string {
	_, h := buf.Bounds()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		sb.WriteString(rowText(buf, y))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestLODFor(t *testing.T) {
	tests := []struct {
		name  string
		f     float64
		scale float64
		want  bodyLOD
	}{
		{"camera", 1, 1, lodNear},
		{"big mid-distance", 0.35, 1.4, lodNear},
		{"normal mid-distance", 0.35, 1, lodMid},
		{"far", 0.07, 1, lodFar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lodFor(tt.f, tt.scale); got != tt.want {
				t.Errorf("lodFor(%v, %v) = %v, want %v", tt.f, tt.scale, got, tt.want)
			}
		})
	}
}

func TestEnemyArtCoversEveryKind(t *testing.T) {
	for _, k := range components.AllEnemyKinds() {
		art, ok := enemyArtTable[k]
		if !ok {
			t.Errorf("no art for %s", k)
			continue
		}
		if len(art.near) == 0 || art.mid == "" || art.far == 0 {
			t.Errorf("incomplete art for %s", k)
		}
	}
}

func TestAnnounceAlphaFades(t *testing.T) {
	if a := announceAlpha(1); a != 0 {
		t.Errorf("alpha at start = %v, want 0", a)
	}
	if a := announceAlpha(0.5); a != 1 {
		t.Errorf("alpha mid = %v, want 1", a)
	}
	if a := announceAlpha(0); a != 0 {
		t.Errorf("alpha at end = %v, want 0", a)
	}
}

func TestParticleRenderer_LagsWithoutTouchingPhysics(t *testing.T) {
	world := engine.NewWorld(1, nil, nil)
	p := &components.Particle{X: 0, Z: 5, Life: 10, Glyph: '*'}
	world.Particles = append(world.Particles, p)

	r := NewParticleRenderer(world)
	ctx := newTestContext()
	buf := render.NewRenderBuffer(testWidth, testHeight)

	r.Render(ctx, buf)
	if !p.HasDisplay {
		t.Fatal("first frame should initialize display position")
	}
	firstX := p.DisplayX

	// Move the physics position; the display should only move part of the way
	p.X = 4
	r.Render(ctx, buf)

	target, _, _ := ctx.Projection.Project(4, 5)
	if p.DisplayX <= firstX || p.DisplayX >= target {
		t.Errorf("DisplayX = %v, want strictly between %v and %v", p.DisplayX, firstX, target)
	}
	if p.X != 4 || p.Z != 5 || p.Life != 10 {
		t.Error("renderer modified physics fields")
	}
}

func TestParticleRenderer_PiledGrainsGlow(t *testing.T) {
	ctx := newTestContext()

	glowAt := func(count int) render.RGB {
		world := engine.NewWorld(1, nil, nil)
		for range count {
			world.Particles = append(world.Particles, &components.Particle{X: 1, Z: 1.5, Life: 10, Glyph: '*'})
		}
		buf := render.NewRenderBuffer(testWidth, testHeight)
		NewParticleRenderer(world).Render(ctx, buf)

		p := world.Particles[0]
		return buf.Get(int(p.DisplayX+0.5), int(p.DisplayY+0.5)).Bg
	}

	one, three := glowAt(1), glowAt(3)
	if one != render.RgbSandGlow {
		t.Errorf("single grain bg = %v, want %v", one, render.RgbSandGlow)
	}
	want := render.RgbSandGlow.Add(render.RgbSandGlow).Add(render.RgbSandGlow)
	if three != want {
		t.Errorf("three grains bg = %v, want accumulated %v", three, want)
	}
}

func TestEnemyRenderer_ShieldRimClippedToEllipse(t *testing.T) {
	world := engine.NewWorld(1, nil, nil)
	e := components.NewEnemy(components.EnemyShielded, 0, 1, nil)
	e.Z = 1.5
	world.Enemies = append(world.Enemies, e)

	buf := render.NewRenderBuffer(testWidth, testHeight)
	NewEnemyRenderer(world).Render(newTestContext(), buf)

	alpha := constants.ShieldGlowAlpha * (0.3 + 0.7*e.Shield.Fraction())
	rim := render.RgbShieldGlow.Scale(min(alpha+constants.ShieldRimBoost, 1))

	rimCells := 0
	for y := 0; y < testHeight; y++ {
		for x := 0; x < testWidth; x++ {
			if buf.Get(x, y).Bg == rim {
				rimCells++
			}
		}
	}
	if rimCells == 0 {
		t.Error("shield rim not drawn")
	}
	if bg := buf.Get(0, 0).Bg; bg != render.RGBBlack {
		t.Errorf("cell outside the shield ellipse changed: %v", bg)
	}

	e.Shield.Health = 0
	buf = render.NewRenderBuffer(testWidth, testHeight)
	NewEnemyRenderer(world).Render(newTestContext(), buf)
	for y := 0; y < testHeight; y++ {
		for x := 0; x < testWidth; x++ {
			if buf.Get(x, y).Bg == rim {
				t.Fatalf("rim drawn at (%d, %d) for a broken shield", x, y)
			}
		}
	}
}

func TestEnemyRenderer_DrawsHealthBarOnlyWhenDamaged(t *testing.T) {
	world := engine.NewWorld(1, nil, nil)
	e := components.NewEnemy(components.EnemyNormal, 0, 1, nil)
	e.Z = 1.5 // near enough for the full body
	world.Enemies = append(world.Enemies, e)

	r := NewEnemyRenderer(world)
	ctx := newTestContext()

	buf := render.NewRenderBuffer(testWidth, testHeight)
	r.Render(ctx, buf)
	if strings.Contains(screenText(buf), "█") {
		t.Error("health bar drawn for an undamaged enemy")
	}
	if !strings.Contains(screenText(buf), "(@)") {
		t.Errorf("near body not drawn:\n%s", screenText(buf))
	}

	e.Health = e.MaxHealth / 2
	buf = render.NewRenderBuffer(testWidth, testHeight)
	r.Render(ctx, buf)
	if !strings.Contains(screenText(buf), "█") {
		t.Error("health bar missing for a damaged enemy")
	}
}

func TestHUDRenderer_ShowsWaveAndScore(t *testing.T) {
	world := engine.NewWorld(1, nil, nil)
	world.State.WaveIndex = 2
	world.State.Score = 125

	buf := render.NewRenderBuffer(testWidth, testHeight)
	NewHUDRenderer(world).Render(newTestContext(), buf)

	row := rowText(buf, 0)
	if !strings.Contains(row, "WAVE 3") || !strings.Contains(row, "SCORE 125") {
		t.Errorf("HUD row = %q", row)
	}
}

func TestOverlayVisibility(t *testing.T) {
	world := engine.NewWorld(1, nil, nil)
	pause := NewPauseRenderer(world)
	over := NewGameOverRenderer(world)
	between := NewBetweenWavesRenderer(world)

	world.State.Paused = true
	if !pause.IsVisible() || over.IsVisible() {
		t.Error("paused: only pause overlay should be visible")
	}

	world.State.GameOver = true
	world.State.BetweenWaves = true
	if pause.IsVisible() || !over.IsVisible() || between.IsVisible() {
		t.Error("game over: only game-over overlay should be visible")
	}
}
