package input

// IntentType discriminates semantic actions bound to keys
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit    // q, Esc, Ctrl+C
	IntentPause   // p
	IntentDebug   // d
	IntentMute    // m
	IntentRestart // r

	// Spread control for the terminal stand-in
	IntentSpreadTighter // [
	IntentSpreadWider   // ]
)

var intentNames = [...]string{
	IntentNone:          "none",
	IntentQuit:          "quit",
	IntentPause:         "pause",
	IntentDebug:         "debug",
	IntentMute:          "mute",
	IntentRestart:       "restart",
	IntentSpreadTighter: "spread_tighter",
	IntentSpreadWider:   "spread_wider",
}

func (i IntentType) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}
