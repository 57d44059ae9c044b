package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment keys providing defaults for command-line flags
const (
	EnvTrackerAddr = "SANDSTORM_TRACKER_ADDR"
	EnvWaves       = "SANDSTORM_WAVES"
	EnvMute        = "SANDSTORM_MUTE"
)

// Env holds defaults read from the process environment
type Env struct {
	TrackerAddr string
	WavesPath   string
	Mute        bool
}

// LoadEnv loads the optional dotenv files then reads the environment
// Variables already set in the process win over file values
func LoadEnv(files ...string) (Env, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	env := Env{
		TrackerAddr: os.Getenv(EnvTrackerAddr),
		WavesPath:   os.Getenv(EnvWaves),
	}
	if v := os.Getenv(EnvMute); v != "" {
		mute, err := strconv.ParseBool(v)
		if err != nil {
			return Env{}, fmt.Errorf("%s: %w", EnvMute, err)
		}
		env.Mute = mute
	}
	return env, nil
}
