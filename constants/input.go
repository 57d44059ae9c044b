package constants

import "time"

// Tracker smoothing
const (
	// TrackerSmoothing is the exponential smoothing factor applied per sample
	TrackerSmoothing = 0.3

	// TrackerWindDecay multiplies wind on frames without a sample
	TrackerWindDecay = 0.9

	// TrackerSpreadDrift is the fraction of the gap to fully open closed per idle frame
	TrackerSpreadDrift = 0.05
)

// Terminal stand-in input
const (
	// TerminalWindGain converts one cell of mouse drag into wind
	TerminalWindGain = 0.15

	// TerminalSpreadStep is the spread change per key press or wheel notch
	TerminalSpreadStep = 0.1

	// TerminalIdleFrames stops terminal samples after this many frames without input
	TerminalIdleFrames = 90
)

// Remote tracker server
const (
	TrackerReadLimit    = 4096
	TrackerIdleTimeout  = 30 * time.Second
	TrackerShutdownWait = 2 * time.Second
)
