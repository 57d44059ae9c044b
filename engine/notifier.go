package engine

import "github.com/lixenwraith/sandstorm/components"

//go:generate go tool mockgen -destination=./mocks/notifier_mock.go -package=mocks . Notifier

// Notifier receives fire-and-forget gameplay events
// Implementations must not block the tick
type Notifier interface {
	EnemyDeath(kind components.EnemyKind)
	PlayerHit(damage int)
	WaveStart(wave int)
	GameOver()
	StartMusic()
	StopMusic()
}

// NopNotifier discards every event, used when audio is unavailable
type NopNotifier struct{}

func (NopNotifier) EnemyDeath(components.EnemyKind) {}
func (NopNotifier) PlayerHit(int)                   {}
func (NopNotifier) WaveStart(int)                   {}
func (NopNotifier) GameOver()                       {}
func (NopNotifier) StartMusic()                     {}
func (NopNotifier) StopMusic()                      {}
