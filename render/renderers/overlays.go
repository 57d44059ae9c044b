package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sandstorm/constants"
	"github.com/lixenwraith/sandstorm/engine"
	"github.com/lixenwraith/sandstorm/render"
)

// BetweenWavesRenderer shows the countdown to the next wave
type BetweenWavesRenderer struct {
	world *engine.World
}

// NewBetweenWavesRenderer creates the between-waves overlay
func NewBetweenWavesRenderer(world *engine.World) *BetweenWavesRenderer {
	return &BetweenWavesRenderer{world: world}
}

// IsVisible returns true during the between-waves pause
func (r *BetweenWavesRenderer) IsVisible() bool {
	st := r.world.State
	return st.BetweenWaves && !st.GameOver
}

// Render draws the cleared banner and countdown
func (r *BetweenWavesRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	buf.SetWriteMask(render.MaskUI)
	st := r.world.State
	seconds := (st.BetweenTimer + constants.TicksPerSecond - 1) / constants.TicksPerSecond

	y := ctx.ScreenHeight / 4
	buf.DrawTextCentered(y, fmt.Sprintf("WAVE %d CLEARED", st.WaveIndex+1), render.RgbAnnounce, tcell.AttrBold)
	buf.DrawTextCentered(y+1, fmt.Sprintf("next wave in %ds", seconds), render.RgbHudText, tcell.AttrNone)
}

// DimRenderer darkens the scene under the pause and game-over windows
type DimRenderer struct {
	world *engine.World
}

// NewDimRenderer creates a dim post-processor
func NewDimRenderer(world *engine.World) *DimRenderer {
	return &DimRenderer{world: world}
}

// Render applies dimming when game is paused or over
func (r *DimRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !ctx.IsPaused && !r.world.State.GameOver {
		return
	}
	buf.MutateDim(0.5, render.MaskAll^render.MaskUI)
}

// PauseRenderer draws the paused window
type PauseRenderer struct {
	world *engine.World
}

// NewPauseRenderer creates the pause overlay
func NewPauseRenderer(world *engine.World) *PauseRenderer {
	return &PauseRenderer{world: world}
}

// IsVisible returns true when paused and the game is still running
func (r *PauseRenderer) IsVisible() bool {
	st := r.world.State
	return st.Paused && !st.GameOver
}

// Render draws the window
func (r *PauseRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	buf.SetWriteMask(render.MaskUI)
	_, y := drawBox(ctx, buf, 34, 6)
	buf.DrawTextCentered(y+2, "PAUSED", render.RgbOverlayText, tcell.AttrBold)
	buf.DrawTextCentered(y+3, "p resume   r restart   q quit", render.RgbHudLabel, tcell.AttrNone)
}

// GameOverRenderer draws the final score window
type GameOverRenderer struct {
	world *engine.World
}

// NewGameOverRenderer creates the game-over overlay
func NewGameOverRenderer(world *engine.World) *GameOverRenderer {
	return &GameOverRenderer{world: world}
}

// IsVisible returns true once player health is depleted
func (r *GameOverRenderer) IsVisible() bool {
	return r.world.State.GameOver
}

// Render draws the window
func (r *GameOverRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	buf.SetWriteMask(render.MaskUI)
	st := r.world.State
	_, y := drawBox(ctx, buf, 34, 8)
	buf.DrawTextCentered(y+2, "GAME OVER", render.RgbGameOver, tcell.AttrBold)
	buf.DrawTextCentered(y+3, fmt.Sprintf("score %d   wave %d", st.Score, st.WaveIndex+1), render.RgbOverlayText, tcell.AttrNone)
	buf.DrawTextCentered(y+4, fmt.Sprintf("kills %d", st.Kills), render.RgbHudLabel, tcell.AttrNone)
	buf.DrawTextCentered(y+5, "r restart   q quit", render.RgbHudLabel, tcell.AttrNone)
}
