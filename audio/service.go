package audio

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/sandstorm/engine"
)

// Service wraps SoundManager and handles graceful degradation when no audio backend is available
type Service struct {
	manager  *SoundManager
	disabled atomic.Bool
	muted    bool
}

// NewService creates a new audio service with the initial mute state
func NewService(muted bool) *Service {
	return &Service{
		manager: NewSoundManager(),
		muted:   muted,
	}
}

// Start initializes the speaker; sets disabled on failure (no error returned)
func (s *Service) Start() {
	if err := s.manager.Initialize(); err != nil {
		log.Printf("[Audio] disabled: %v", err)
		s.disabled.Store(true)
		return
	}
	s.manager.SetMuted(s.muted)
}

// Stop releases the speaker
func (s *Service) Stop() {
	if s.disabled.Load() {
		return
	}
	s.manager.Cleanup()
}

// IsDisabled returns true if audio is unavailable
func (s *Service) IsDisabled() bool {
	return s.disabled.Load()
}

// ToggleMute flips mute; returns true (muted) when audio is disabled
func (s *Service) ToggleMute() bool {
	if s.disabled.Load() {
		return true
	}
	return s.manager.ToggleMute()
}

// Notifier returns the game event sink, a no-op when audio is disabled
func (s *Service) Notifier() engine.Notifier {
	if s.disabled.Load() {
		return engine.NopNotifier{}
	}
	return s.manager
}
