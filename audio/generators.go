package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/sandstorm/constants"
)

// semitone returns the frequency ratio of n equal-tempered semitones
func semitone(n int) float64 {
	return math.Pow(2, float64(n)/12)
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Square-ish wave with harmonics for harsh buzz
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// Envelope to fade in
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.6

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// PopGenerator generates a short decaying blip with a downward chirp
type PopGenerator struct {
	sr    beep.SampleRate
	freq  float64
	phase float64
	pos   int
}

// NewPopGenerator creates a pop generator starting at freq
func NewPopGenerator(sr beep.SampleRate, freq float64) *PopGenerator {
	return &PopGenerator{sr: sr, freq: freq}
}

func (g *PopGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		freq := g.freq * (1 - 0.5*math.Min(t/0.1, 1))
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := 0.35 * math.Exp(-t*30) * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *PopGenerator) Err() error {
	return nil
}

// SweepGenerator glides linearly from one frequency to another over a duration
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	phase    float64
	pos      int
}

// NewSweepGenerator creates a sweep generator
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, length: max(sr.N(d), 1)}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.length), 1)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// Triangle-ish timbre from two partials, fading out
		sample := 0.3 * (1 - progress) * (math.Sin(g.phase) + 0.3*math.Sin(3*g.phase))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// SynthwaveGenerator generates an endless rhythmic beat
type SynthwaveGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	kickLen int
}

// NewSynthwaveGenerator creates a synthwave beat generator
func NewSynthwaveGenerator(sr beep.SampleRate) *SynthwaveGenerator {
	return &SynthwaveGenerator{
		sr:      sr,
		samples: sr.N(constants.MusicBeatDuration),
		kickLen: sr.N(100 * time.Millisecond),
	}
}

func (g *SynthwaveGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := g.pos % g.samples
		t := float64(beatPos) / float64(g.sr)

		// Kick drum on every beat
		kick := 0.0
		if beatPos < g.kickLen {
			kickEnv := 1.0 - float64(beatPos)/float64(g.kickLen)
			kickFreq := 60 * (1 + 2*kickEnv)
			kick = 0.4 * kickEnv * math.Sin(2*math.Pi*kickFreq*t)
		}

		// Bass alternates root and fifth every four beats
		bar := (g.pos / g.samples / 4) % 2
		bassFreq := 55.0
		if bar == 1 {
			bassFreq = 55.0 * semitone(7)
		}
		bass := 0.12 * math.Sin(2*math.Pi*bassFreq*float64(g.pos)/float64(g.sr))

		sample := kick + bass

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SynthwaveGenerator) Err() error {
	return nil
}
