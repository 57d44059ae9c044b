package render

import "github.com/gdamore/tcell/v2"

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs tcell.AttrMask
	Mask  uint8
}

// DefaultBgRGB is the default background color (Tokyo Night)
var DefaultBgRGB = RgbBackground
