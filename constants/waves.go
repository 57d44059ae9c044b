package constants

// Wave Progression
const (
	// BetweenWaveTicks is the quiet period between waves
	BetweenWaveTicks = 180

	// WaveAnnounceTicks is the wave banner display duration
	WaveAnnounceTicks = 120

	// WaveHealthScale is the per-wave health increment: health *= 1 + waveIndex * WaveHealthScale
	WaveHealthScale = 0.15

	// FinalWaveDelayStep is subtracted from each spawn delay per repetition of the final wave
	FinalWaveDelayStep = 15

	// FinalWaveMinDelayFactor floors compressed delays at this fraction of the authored delay
	FinalWaveMinDelayFactor = 0.4
)
