package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/colorfour/internal/engine"
)

//go:embed defaults/colorfour.yaml
var defaultYAML []byte

// Effect defaults.
const (
	DefaultSparks        = 50
	DefaultSparkFrames   = 30
	DefaultSparkInterval = 60 * time.Millisecond
)

// Default returns the hardcoded default configuration.
// It matches the embedded defaults/colorfour.yaml.
func Default() Config {
	palette := engine.DefaultPalette()
	names := make([]string, len(palette))
	for i, c := range palette {
		names[i] = string(c)
	}

	return Config{
		Board: BoardConfig{
			Rows:      engine.DefaultRows,
			Cols:      engine.DefaultCols,
			WinLength: engine.DefaultWinLength,
		},
		Round: RoundConfig{
			Seconds:   engine.DefaultRoundSeconds,
			MaxLevel:  engine.DefaultMaxLevel,
			WinDelay:  engine.DefaultWinDelay,
			DrawDelay: engine.DefaultDrawDelay,
		},
		Palette: names,
		Effects: EffectsConfig{
			Sparks:        DefaultSparks,
			SparkFrames:   DefaultSparkFrames,
			SparkInterval: DefaultSparkInterval,
			Sound:         true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
