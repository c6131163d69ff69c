package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/colorfour/internal/engine"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := Default()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, Default())
	}
}

func TestDefaultSettings(t *testing.T) {
	got := Default().Settings()
	want := engine.DefaultSettings()

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Default().Settings() = %+v, expected %+v", got, want)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  rows: 5\n  cols: 5\nround:\n  seconds: 12\n  win_delay: 1s\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Board.Rows != 5 || cfg.Board.Cols != 5 {
		t.Errorf("board = %dx%d, expected 5x5", cfg.Board.Rows, cfg.Board.Cols)
	}
	if cfg.Round.Seconds != 12 {
		t.Errorf("Round.Seconds = %d, expected 12", cfg.Round.Seconds)
	}
	if cfg.Round.WinDelay != time.Second {
		t.Errorf("Round.WinDelay = %v, expected 1s", cfg.Round.WinDelay)
	}
	// Unset values keep their defaults
	if cfg.Board.WinLength != engine.DefaultWinLength {
		t.Errorf("Board.WinLength = %d, expected default %d", cfg.Board.WinLength, engine.DefaultWinLength)
	}
	if len(cfg.Palette) != 5 {
		t.Errorf("len(Palette) = %d, expected 5", len(cfg.Palette))
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() of a missing file should fail")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, expected os.ErrNotExist", err)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := []byte("palette:\n  - red\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, expected ErrInvalidConfig", err)
	}
	if !errors.Is(err, engine.ErrInvalidSettings) {
		t.Errorf("Load() error = %v, expected to wrap engine.ErrInvalidSettings", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "base.yaml")
	if err := os.WriteFile(path, []byte("round:\n  seconds: 25\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("COLORFOUR_ROUND_SECONDS", "9")
	t.Setenv("COLORFOUR_MAX_LEVEL", "3")
	t.Setenv("COLORFOUR_PALETTE", "red,blue,green")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Round.Seconds != 9 {
		t.Errorf("Round.Seconds = %d, expected 9 from env", cfg.Round.Seconds)
	}
	if cfg.Round.MaxLevel != 3 {
		t.Errorf("Round.MaxLevel = %d, expected 3 from env", cfg.Round.MaxLevel)
	}
	want := []string{"red", "blue", "green"}
	if !reflect.DeepEqual(cfg.Palette, want) {
		t.Errorf("Palette = %v, expected %v", cfg.Palette, want)
	}
}

func TestValidateEffects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"no sparks", func(c *Config) { c.Effects.Sparks = 0 }, false},
		{"negative sparks", func(c *Config) { c.Effects.Sparks = -1 }, true},
		{"zero interval", func(c *Config) { c.Effects.SparkInterval = 0 }, true},
		{"zero interval without frames", func(c *Config) {
			c.Effects.SparkInterval = 0
			c.Effects.SparkFrames = 0
		}, false},
		{"zero rows", func(c *Config) { c.Board.Rows = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantSeconds int
	}{
		{DifficultyEasy, EasyRoundSeconds},
		{DifficultyNormal, engine.DefaultRoundSeconds},
		{DifficultyHard, HardRoundSeconds},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Round.Seconds != tc.wantSeconds {
				t.Errorf("Round.Seconds = %d, expected %d", cfg.Round.Seconds, tc.wantSeconds)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"fixed", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestYAMLRoundTripsThroughLoad(t *testing.T) {
	cfg := Default()
	cfg.Round.Seconds = 17

	data, err := cfg.YAML()
	if err != nil {
		t.Fatalf("YAML() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "dump.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("Load(YAML()) = %+v, expected %+v", loaded, cfg)
	}
}
