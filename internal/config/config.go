// Package config provides YAML-based game configuration loading and
// difficulty presets for Color Four.
package config

import (
	"fmt"
	"time"
)

// Config contains all configuration for a Color Four run.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Round   RoundConfig   `yaml:"round"`
	Palette []string      `yaml:"palette" env:"COLORFOUR_PALETTE" env-separator:","`
	Effects EffectsConfig `yaml:"effects"`
}

// BoardConfig defines the grid dimensions and the run length that wins.
type BoardConfig struct {
	Rows      int `yaml:"rows" env:"COLORFOUR_ROWS"`
	Cols      int `yaml:"cols" env:"COLORFOUR_COLS"`
	WinLength int `yaml:"win_length" env:"COLORFOUR_WIN_LENGTH"`
}

// RoundConfig defines the countdown and level progression.
type RoundConfig struct {
	Seconds   int           `yaml:"seconds" env:"COLORFOUR_ROUND_SECONDS"`
	MaxLevel  int           `yaml:"max_level" env:"COLORFOUR_MAX_LEVEL"`
	WinDelay  time.Duration `yaml:"win_delay" env:"COLORFOUR_WIN_DELAY"`
	DrawDelay time.Duration `yaml:"draw_delay" env:"COLORFOUR_DRAW_DELAY"`
}

// EffectsConfig defines the win celebration and sound cues.
type EffectsConfig struct {
	Sparks        int           `yaml:"sparks" env:"COLORFOUR_SPARKS"`
	SparkFrames   int           `yaml:"spark_frames" env:"COLORFOUR_SPARK_FRAMES"`
	SparkInterval time.Duration `yaml:"spark_interval" env:"COLORFOUR_SPARK_INTERVAL"`
	Sound         bool          `yaml:"sound" env:"COLORFOUR_SOUND"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset.
// An empty string selects DifficultyNormal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}
