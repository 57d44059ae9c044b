package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/lixenwraith/sandstorm/components"
	"github.com/lixenwraith/sandstorm/constants"
	"gopkg.in/yaml.v3"
)

//go:embed waves.yaml
var defaultWavesYAML []byte

var (
	// ErrNoWaves is returned when a wave file defines no waves
	ErrNoWaves = errors.New("no waves defined")

	// ErrInvalidWave is wrapped by every per-entry validation failure
	ErrInvalidWave = errors.New("invalid wave")
)

// WaveFile is the top-level YAML document
type WaveFile struct {
	Waves []WaveConfig `yaml:"waves"`
}

// WaveConfig is one authored wave
type WaveConfig struct {
	Name    string        `yaml:"name"`
	Entries []EntryConfig `yaml:"entries"`
}

// EntryConfig is one spawn line, optionally repeated count times
type EntryConfig struct {
	Kind     string   `yaml:"kind"`
	Lateral  *float64 `yaml:"lateral,omitempty"`
	Delay    int      `yaml:"delay"`
	Count    int      `yaml:"count,omitempty"`    // default 1
	Interval int      `yaml:"interval,omitempty"` // ticks between repeats
}

// DefaultWaves returns the embedded wave sequence
func DefaultWaves() ([]components.Wave, error) {
	waves, err := ParseWaves(defaultWavesYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded waves: %w", err)
	}
	return waves, nil
}

// LoadWaves reads a wave file, falling back to the embedded sequence for an empty path
func LoadWaves(path string) ([]components.Wave, error) {
	if path == "" {
		return DefaultWaves()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wave file: %w", err)
	}

	waves, err := ParseWaves(data)
	if err != nil {
		return nil, fmt.Errorf("wave file %s: %w", path, err)
	}
	return waves, nil
}

// ParseWaves decodes, validates and expands a YAML wave document
func ParseWaves(data []byte) ([]components.Wave, error) {
	var file WaveFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse waves YAML: %w", err)
	}

	if len(file.Waves) == 0 {
		return nil, ErrNoWaves
	}

	waves := make([]components.Wave, 0, len(file.Waves))
	for i, wc := range file.Waves {
		wave, err := buildWave(i, wc)
		if err != nil {
			return nil, err
		}
		waves = append(waves, wave)
	}
	return waves, nil
}

// buildWave applies defaults and expands counted entries, ordered by delay
func buildWave(index int, wc WaveConfig) (components.Wave, error) {
	name := wc.Name
	if name == "" {
		name = fmt.Sprintf("Wave %d", index+1)
	}

	if len(wc.Entries) == 0 {
		return components.Wave{}, fmt.Errorf("%w: wave %d (%s) has no entries", ErrInvalidWave, index+1, name)
	}

	var entries []components.SpawnEntry
	for j, ec := range wc.Entries {
		kind, err := components.ParseEnemyKind(ec.Kind)
		if err != nil {
			return components.Wave{}, fmt.Errorf("%w: wave %d entry %d: %w", ErrInvalidWave, index+1, j+1, err)
		}
		if ec.Delay < 0 {
			return components.Wave{}, fmt.Errorf("%w: wave %d entry %d: negative delay %d", ErrInvalidWave, index+1, j+1, ec.Delay)
		}
		if ec.Lateral != nil {
			if x := *ec.Lateral; math.IsNaN(x) || math.Abs(x) > constants.LaneHalfWidth {
				return components.Wave{}, fmt.Errorf("%w: wave %d entry %d: lateral %v outside lane", ErrInvalidWave, index+1, j+1, x)
			}
		}
		if ec.Count < 0 || ec.Interval < 0 {
			return components.Wave{}, fmt.Errorf("%w: wave %d entry %d: negative count or interval", ErrInvalidWave, index+1, j+1)
		}
		count := ec.Count
		if count == 0 {
			count = 1
		}

		for k := range count {
			entries = append(entries, components.SpawnEntry{
				Kind:    kind,
				Lateral: ec.Lateral,
				Delay:   ec.Delay + k*ec.Interval,
			})
		}
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Delay < entries[b].Delay
	})

	return components.Wave{Name: name, Entries: entries}, nil
}
