package engine

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
)

// FrameLoop serializes input events and frame callbacks on one goroutine
// The world is only touched from inside the callbacks
type FrameLoop struct {
	interval time.Duration
	events   <-chan tcell.Event
	onEvent  func(tcell.Event) bool
	onFrame  func()
}

// NewFrameLoop creates a loop ticking every interval
// onEvent returning false stops the loop; events may be nil
func NewFrameLoop(interval time.Duration, events <-chan tcell.Event, onEvent func(tcell.Event) bool, onFrame func()) *FrameLoop {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &FrameLoop{
		interval: interval,
		events:   events,
		onEvent:  onEvent,
		onFrame:  onFrame,
	}
}

// Run blocks until ctx is done or an event handler requests exit
// Returns nil on a requested exit, ctx.Err() on cancellation
func (l *FrameLoop) Run(ctx context.Context) error {
	frameTicker := time.NewTicker(l.interval)
	defer frameTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-l.events:
			if !ok {
				// Poller gone, stop reading but keep ticking
				l.events = nil
				continue
			}
			if l.onEvent != nil && !l.onEvent(ev) {
				return nil
			}

		case <-frameTicker.C:
			if l.onFrame != nil {
				l.onFrame()
			}
		}
	}
}
