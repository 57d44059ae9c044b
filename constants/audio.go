package constants

import "time"

// Audio
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// EnemyDeathSoundDuration is the length of the enemy pop
	EnemyDeathSoundDuration = 120 * time.Millisecond

	// PlayerHitSoundDuration is the length of the hit buzz
	PlayerHitSoundDuration = 220 * time.Millisecond

	// WaveStartNoteDuration is the length of each wave chime note
	WaveStartNoteDuration = 90 * time.Millisecond

	// GameOverSoundDuration is the length of the descending game-over sweep
	GameOverSoundDuration = 1200 * time.Millisecond

	// MusicBeatDuration is one beat of the background loop (100 BPM)
	MusicBeatDuration = 600 * time.Millisecond

	// MasterVolume is the beep effects.Volume exponent applied to the mixer (base 2)
	MasterVolume = -1.0
)
