package systems

import (
	"github.com/lixenwraith/sandstorm/components"
	"github.com/lixenwraith/sandstorm/engine"
	"github.com/lixenwraith/sandstorm/vmath"
)

const (
	testWidth  = 80
	testHeight = 24
)

// newTestWorld creates a seeded world with an optional notifier
func newTestWorld(notifier engine.Notifier) *engine.World {
	return engine.NewWorld(42, notifier, nil)
}

func testProjection() vmath.Projection {
	return vmath.NewProjection(testWidth, testHeight)
}

// singleWave builds one wave of delay-0 entries at lateral 0
func singleWave(kinds ...components.EnemyKind) components.Wave {
	w := components.Wave{Name: "test"}
	for _, k := range kinds {
		w.Entries = append(w.Entries, components.SpawnEntry{Kind: k, Lateral: components.Lateral(0)})
	}
	return w
}
