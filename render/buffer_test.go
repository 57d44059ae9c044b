package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestRenderBuffer_SetBlendModes(t *testing.T) {
	tests := []struct {
		name   string
		mode   BlendMode
		wantBg RGB
	}{
		{"replace", BlendReplace, RGB{200, 0, 0}},
		{"add", BlendAdd, RGB{255, 100, 0}},
		{"max", BlendMax, RGB{200, 100, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewRenderBuffer(4, 2)
			buf.SetWithBg(1, 1, 'x', RGB{}, RGB{100, 100, 0})
			buf.Set(1, 1, 0, RGB{}, RGB{200, 0, 0}, tt.mode, tcell.AttrNone)

			got := buf.Get(1, 1)
			if got.Bg != tt.wantBg {
				t.Errorf("Bg = %v, want %v", got.Bg, tt.wantBg)
			}
			if got.Rune != 'x' {
				t.Errorf("rune 0 should keep existing rune, got %q", got.Rune)
			}
		})
	}
}

func TestRenderBuffer_OutOfBoundsIgnored(t *testing.T) {
	buf := NewRenderBuffer(3, 3)
	buf.SetWithBg(-1, 0, 'a', RGB{}, RGB{})
	buf.SetFgOnly(3, 0, 'b', RGB{}, tcell.AttrNone)
	buf.SetBgOnly(0, 3, RGB{})
	if (buf.Get(-1, 0) != Cell{}) {
		t.Error("out of bounds Get should return zero Cell")
	}
}

func TestRenderBuffer_MutateDimRespectsMask(t *testing.T) {
	buf := NewRenderBuffer(2, 1)
	buf.SetWriteMask(MaskEnemy)
	buf.SetWithBg(0, 0, 'e', RGB{200, 200, 200}, RGB{100, 100, 100})
	buf.SetWriteMask(MaskUI)
	buf.SetWithBg(1, 0, 'u', RGB{200, 200, 200}, RGB{100, 100, 100})

	buf.MutateDim(0.5, MaskAll^MaskUI)

	if got := buf.Get(0, 0).Fg; got != (RGB{100, 100, 100}) {
		t.Errorf("enemy cell Fg = %v, want dimmed", got)
	}
	if got := buf.Get(1, 0).Fg; got != (RGB{200, 200, 200}) {
		t.Errorf("UI cell Fg = %v, want untouched", got)
	}
}

func TestRenderBuffer_FlushToSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(10, 3)

	buf := NewRenderBuffer(10, 3)
	buf.DrawTextCentered(1, "SAND", RgbHudText, tcell.AttrBold)
	buf.FlushToScreen(screen)

	var got []rune
	for x := 0; x < 10; x++ {
		r, _, _, _ := screen.GetContent(x, 1)
		got = append(got, r)
	}
	if string(got) != "   SAND   " {
		t.Errorf("row 1 = %q, want %q", string(got), "   SAND   ")
	}

	_, _, style, _ := screen.GetContent(0, 0)
	_, bg, _ := style.Decompose()
	if bg != RgbBackground.Tcell() {
		t.Errorf("untouched cell bg = %v, want default background", bg)
	}
}

type recordingRenderer struct {
	name    string
	log     *[]string
	visible bool
}

func (r *recordingRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	*r.log = append(*r.log, r.name)
}

func (r *recordingRenderer) IsVisible() bool { return r.visible }

func TestRenderOrchestrator_OrderAndVisibility(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(8, 4)

	var calls []string
	o := NewRenderOrchestrator(screen, 8, 4)
	o.Register(&recordingRenderer{"hud", &calls, true}, PriorityUI)
	o.Register(&recordingRenderer{"bg", &calls, true}, PriorityBackground)
	o.Register(&recordingRenderer{"debug", &calls, false}, PriorityDebug)
	o.Register(&recordingRenderer{"grid", &calls, true}, PriorityGrid)
	o.Register(&recordingRenderer{"hud2", &calls, true}, PriorityUI)

	o.RenderFrame(NewRenderContext(1, 8, 4, false, false))

	want := []string{"bg", "grid", "hud", "hud2"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("calls[%d] = %s, want %s", i, calls[i], want[i])
		}
	}
}
