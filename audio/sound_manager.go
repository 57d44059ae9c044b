package audio

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/sandstorm/components"
	"github.com/lixenwraith/sandstorm/constants"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// ErrNotInitialized is returned when a sound is queued before Initialize succeeded
var ErrNotInitialized = errors.New("audio not initialized")

// SoundManager plays synthesized game sounds through a single speaker mixer
// Every method is safe to call without a working audio device
type SoundManager struct {
	mu            sync.Mutex
	musicStreamer *beep.Ctrl
	mixer         *beep.Mixer
	volume        *effects.Volume
	initialized   bool
	muted         atomic.Bool
	dropLogged    atomic.Bool // first dropped sound already logged
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer: mixer,
		volume: &effects.Volume{
			Streamer: mixer,
			Base:     2,
			Volume:   constants.MasterVolume,
		},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.volume)
	sm.initialized = true
	sm.dropLogged.Store(false)
	log.Printf("[Audio] speaker initialized at %d Hz", constants.AudioSampleRate)
	return nil
}

// Cleanup stops all sounds and detaches from the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.musicStreamer != nil {
		sm.musicStreamer.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Clear()
	sm.musicStreamer = nil
	sm.initialized = false
}

// SetMuted silences or restores every sound, music included
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.volume.Silent = muted
	speaker.Unlock()
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.muted.Load()
	sm.SetMuted(muted)
	return muted
}

// Muted reports the current mute state
func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// play queues a one-shot streamer on the mixer
func (sm *SoundManager) play(s beep.Streamer) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// fire queues s, logging only the first failure
func (sm *SoundManager) fire(sound string, s beep.Streamer) {
	if err := sm.play(s); err != nil && sm.dropLogged.CompareAndSwap(false, true) {
		log.Printf("[Audio] %s dropped, further failures silent: %v", sound, err)
	}
}

// EnemyDeath plays a pop pitched by enemy size
func (sm *SoundManager) EnemyDeath(kind components.EnemyKind) {
	freq := 660.0 / kind.Stats().Scale
	sm.fire("enemy death", beep.Take(sampleRate.N(constants.EnemyDeathSoundDuration), NewPopGenerator(sampleRate, freq)))
}

// PlayerHit plays a low buzz, longer for heavier hits
func (sm *SoundManager) PlayerHit(damage int) {
	d := constants.PlayerHitSoundDuration + time.Duration(damage)*4*time.Millisecond
	sm.fire("player hit", beep.Take(sampleRate.N(d), NewBuzzGenerator(sampleRate, 110)))
}

// WaveStart plays a rising three-note chime
func (sm *SoundManager) WaveStart(wave int) {
	// Root rises a semitone per wave, wrapping each octave
	root := 440.0 * semitone(wave%12)
	notes := make([]beep.Streamer, 0, 3)
	for _, step := range []int{0, 4, 7} {
		tone, err := generators.SineTone(sampleRate, root*semitone(step))
		if err != nil {
			log.Printf("[Audio] chime tone: %v", err)
			return
		}
		n := sampleRate.N(constants.WaveStartNoteDuration)
		notes = append(notes, &effects.Volume{Streamer: beep.Take(n, tone), Base: 2, Volume: -3})
	}
	sm.fire("wave chime", beep.Seq(notes...))
}

// GameOver plays a descending sweep
func (sm *SoundManager) GameOver() {
	sm.fire("game over", beep.Take(sampleRate.N(constants.GameOverSoundDuration), NewSweepGenerator(sampleRate, 440, 55, constants.GameOverSoundDuration)))
}

// StartMusic starts the background beat, no-op when already playing
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.musicStreamer != nil && !sm.musicStreamer.Paused {
		return
	}

	ctrl := &beep.Ctrl{Streamer: NewSynthwaveGenerator(sampleRate), Paused: false}
	speaker.Lock()
	if sm.musicStreamer != nil {
		sm.musicStreamer.Streamer = nil
	}
	sm.musicStreamer = ctrl
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopMusic pauses the background beat
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.musicStreamer == nil || !sm.initialized {
		return
	}
	speaker.Lock()
	sm.musicStreamer.Paused = true
	speaker.Unlock()
}
