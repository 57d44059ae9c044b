package main

import (
	"testing"

	"github.com/lixenwraith/sandstorm/config"
	"github.com/lixenwraith/sandstorm/constants"
)

func TestParseFlags(t *testing.T) {
	env := config.Env{TrackerAddr: ":9000", WavesPath: "env.yaml", Mute: true}

	tests := []struct {
		name    string
		args    []string
		check   func(t *testing.T, o options)
		wantErr bool
	}{
		{
			name: "env defaults",
			args: nil,
			check: func(t *testing.T, o options) {
				if o.trackerAddr != ":9000" || o.wavesPath != "env.yaml" || !o.mute {
					t.Errorf("env defaults not applied: %+v", o)
				}
				if o.fps != constants.TicksPerSecond {
					t.Errorf("fps = %d, want %d", o.fps, constants.TicksPerSecond)
				}
				if o.seed == 0 {
					t.Error("seed should be filled when 0")
				}
			},
		},
		{
			name: "flags override env",
			args: []string{"-tracker", "127.0.0.1:7000", "-waves", "flag.yaml", "-mute=false", "-seed", "5", "-debug"},
			check: func(t *testing.T, o options) {
				if o.trackerAddr != "127.0.0.1:7000" || o.wavesPath != "flag.yaml" || o.mute {
					t.Errorf("flags did not override env: %+v", o)
				}
				if o.seed != 5 || !o.debug {
					t.Errorf("seed/debug = %d/%v", o.seed, o.debug)
				}
			},
		},
		{name: "fps out of range", args: []string{"-fps", "0"}, wantErr: true},
		{name: "unknown flag", args: []string{"-turbo"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := parseFlags(tt.args, env)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags: %v", err)
			}
			tt.check(t, o)
		})
	}
}
