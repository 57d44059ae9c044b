package render

import (
	"github.com/gdamore/tcell/v2"
)

// RenderBuffer is a compositor over a Cell array with dirty tracking
type RenderBuffer struct {
	cells     []Cell
	touched   []bool
	width     int
	height    int
	writeMask uint8
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	b.writeMask = MaskNone
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Fg: DefaultBgRGB, Bg: RGBBlack}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Bounds returns the buffer dimensions
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// Get returns the cell at (x, y), zero Cell when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetWriteMask tags subsequent writes for post-processing
func (b *RenderBuffer) SetWriteMask(mask uint8) {
	b.writeMask = mask
}

// inBounds returns true if in screen bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// ===== COMPOSITOR API =====

// Set composites a cell with the given blend mode; rune 0 keeps the existing rune and foreground
func (b *RenderBuffer) Set(x, y int, r rune, fg, bg RGB, mode BlendMode, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]

	if r != 0 {
		dst.Rune = r
		dst.Attrs = attrs
		dst.Fg = compose(dst.Fg, fg, mode)
	}
	dst.Bg = compose(dst.Bg, bg, mode)
	dst.Mask = b.writeMask
	b.touched[idx] = true
}

func compose(dst, src RGB, mode BlendMode) RGB {
	switch mode {
	case BlendAdd:
		return dst.Add(src)
	case BlendMax:
		return dst.Max(src)
	default:
		return src
	}
}

// SetFgOnly writes rune, foreground, and attrs while preserving existing background
// Does NOT mark cell as touched, allowing underlying background to persist or default in finalize()
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg RGB, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Attrs = attrs
	dst.Mask = b.writeMask
}

// SetBgOnly updates the background color while preserving existing rune/foreground
func (b *RenderBuffer) SetBgOnly(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = bg
	b.touched[idx] = true
}

// BlendBg alpha-blends bg over the existing background
func (b *RenderBuffer) BlendBg(x, y int, bg RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = b.cells[idx].Bg.Blend(bg, alpha)
	b.touched[idx] = true
}

// SetWithBg writes a cell with explicit fg and bg colors (opaque replace)
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]
	dst.Rune = r
	dst.Fg = fg
	dst.Bg = bg
	dst.Attrs = tcell.AttrNone
	dst.Mask = b.writeMask
	b.touched[idx] = true
}

// DrawText writes s left to right starting at (x, y), foreground only
// Returns the column after the last rune
func (b *RenderBuffer) DrawText(x, y int, s string, fg RGB, attrs tcell.AttrMask) int {
	for _, r := range s {
		b.SetFgOnly(x, y, r, fg, attrs)
		x++
	}
	return x
}

// DrawTextCentered writes s centered on row y
func (b *RenderBuffer) DrawTextCentered(y int, s string, fg RGB, attrs tcell.AttrMask) {
	x := (b.width - len([]rune(s))) / 2
	b.DrawText(x, y, s, fg, attrs)
}

// MutateDim scales foreground and background of cells whose mask intersects targetMask
func (b *RenderBuffer) MutateDim(factor float64, targetMask uint8) {
	for i := range b.cells {
		c := &b.cells[i]
		if c.Mask&targetMask == 0 {
			continue
		}
		c.Fg = c.Fg.Scale(factor)
		c.Bg = c.Bg.Scale(factor)
	}
}

// ===== OUTPUT =====

// finalize sets default background to untouched cells before Flush
func (b *RenderBuffer) finalize() {
	for i := range b.cells {
		if !b.touched[i] {
			b.cells[i].Bg = RgbBackground
		}
	}
}

// FlushToScreen writes the buffer to the tcell screen and shows it
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	b.finalize()
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			c := b.cells[row+x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.
				Foreground(c.Fg.Tcell()).
				Background(c.Bg.Tcell()).
				Attributes(c.Attrs)
			screen.SetContent(x, y, r, nil, style)
		}
	}
	screen.Show()
}
