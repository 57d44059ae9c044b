package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sandstorm/constants"
	"github.com/lixenwraith/sandstorm/vmath"
)

// TerminalSource turns mouse and key input into tracker samples
// Pointer follows the mouse column, dragging with the left button blows wind
// Owned by the frame loop goroutine
type TerminalSource struct {
	tracker *Tracker
	width   int

	lastX, lastY int
	dragging     bool

	pointer float64
	spread  float64
	windX   float64
	windZ   float64

	idle int
}

// NewTerminalSource creates an idle terminal source feeding tracker
func NewTerminalSource(tracker *Tracker, width int) *TerminalSource {
	return &TerminalSource{
		tracker: tracker,
		width:   width,
		pointer: constants.DefaultPointer,
		spread:  constants.DefaultSpread,
		idle:    constants.TerminalIdleFrames,
	}
}

// Resize updates the column span used for the pointer
func (s *TerminalSource) Resize(width int) {
	s.width = width
}

// HandleMouse updates pointer, drag wind and wheel spread
func (s *TerminalSource) HandleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	s.idle = 0

	if s.width > 1 {
		s.pointer = vmath.Clamp(float64(x)/float64(s.width-1), 0, 1)
	}

	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		s.AdjustSpread(-constants.TerminalSpreadStep)
	case buttons&tcell.WheelDown != 0:
		s.AdjustSpread(constants.TerminalSpreadStep)
	}

	if buttons&tcell.Button1 != 0 {
		if s.dragging {
			// Up the screen pushes sand away from the camera
			s.windX += float64(x-s.lastX) * constants.TerminalWindGain
			s.windZ += float64(s.lastY-y) * constants.TerminalWindGain
		}
		s.dragging = true
	} else {
		s.dragging = false
	}
	s.lastX, s.lastY = x, y
}

// AdjustSpread nudges spread by delta, clamped to [0,1]
func (s *TerminalSource) AdjustSpread(delta float64) {
	s.idle = 0
	s.spread = vmath.Clamp(s.spread+delta, 0, 1)
}

// Spread returns the spread level the terminal is holding
func (s *TerminalSource) Spread() float64 {
	return s.spread
}

// Frame pushes this frame's sample unless the terminal has gone idle
func (s *TerminalSource) Frame() {
	if s.idle >= constants.TerminalIdleFrames {
		return
	}
	s.idle++

	s.tracker.Push(Sample{
		Wind:    [3]float64{s.windX, 0, s.windZ},
		Spread:  s.spread,
		Pointer: s.pointer,
		Running: true,
	})
	s.windX, s.windZ = 0, 0
}
