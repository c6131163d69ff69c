package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/colorfour/internal/engine"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// FileName is the config file name searched in the user and local directories.
const FileName = "colorfour.yaml"

// Load loads the Color Four configuration and applies COLORFOUR_* environment overrides.
// Search order: customPath -> ~/.colorfour/config.yaml -> ./configs/colorfour.yaml -> embedded default
// Values missing from a file keep their defaults.
func Load(customPath string) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("config: read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := Default()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			return fileCfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".colorfour", "config.yaml")
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	if err := c.Settings().Validate(); err != nil {
		return fmt.Errorf("config: %w: %w", ErrInvalidConfig, err)
	}
	if c.Effects.Sparks < 0 || c.Effects.SparkFrames < 0 {
		return fmt.Errorf("config: %w: spark counts must not be negative", ErrInvalidConfig)
	}
	if c.Effects.SparkFrames > 0 && c.Effects.SparkInterval <= 0 {
		return fmt.Errorf("config: %w: spark_interval must be positive", ErrInvalidConfig)
	}
	return nil
}

// Settings converts the configuration to engine settings.
func (c Config) Settings() engine.Settings {
	palette := make([]engine.Color, len(c.Palette))
	for i, name := range c.Palette {
		palette[i] = engine.Color(name)
	}

	return engine.Settings{
		Rows:         c.Board.Rows,
		Cols:         c.Board.Cols,
		WinLength:    c.Board.WinLength,
		RoundSeconds: c.Round.Seconds,
		MaxLevel:     c.Round.MaxLevel,
		Palette:      palette,
		WinDelay:     c.Round.WinDelay,
		DrawDelay:    c.Round.DrawDelay,
	}
}

// YAML renders the configuration in the same format it is loaded from.
func (c Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
