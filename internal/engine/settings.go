// Package engine implements the Color Four game engine: an R×C board, a
// roster of competing colors that grows with each level, a countdown timer,
// and win/draw detection.
//
// The engine is synchronous and has no UI or timer dependencies. Delayed
// level transitions go through an injected Scheduler and every state change
// is reported to a Listener as an Event.
package engine

import (
	"errors"
	"fmt"
	"time"
)

// Color identifies a player disc. The empty string marks an empty cell.
type Color string

// Palette colors in roster order.
const (
	NoColor Color = ""
	Red     Color = "red"
	Yellow  Color = "yellow"
	Green   Color = "green"
	Blue    Color = "blue"
	Purple  Color = "purple"
)

// DefaultPalette returns the ordered superset of player colors.
func DefaultPalette() []Color {
	return []Color{Red, Yellow, Green, Blue, Purple}
}

// Default game constants.
const (
	DefaultRows         = 6
	DefaultCols         = 7
	DefaultWinLength    = 4
	DefaultRoundSeconds = 30
	DefaultMaxLevel     = 10
	DefaultWinDelay     = 2500 * time.Millisecond
	DefaultDrawDelay    = 1500 * time.Millisecond
)

// ErrInvalidSettings is returned when engine settings cannot describe a game.
var ErrInvalidSettings = errors.New("engine: invalid settings")

// Settings holds the tunable game constants.
type Settings struct {
	Rows         int
	Cols         int
	WinLength    int
	RoundSeconds int
	MaxLevel     int
	Palette      []Color

	// WinDelay and DrawDelay are how long the round stays inactive before
	// the next (or same) level starts.
	WinDelay  time.Duration
	DrawDelay time.Duration
}

// DefaultSettings returns the classic 6x7 configuration.
func DefaultSettings() Settings {
	return Settings{
		Rows:         DefaultRows,
		Cols:         DefaultCols,
		WinLength:    DefaultWinLength,
		RoundSeconds: DefaultRoundSeconds,
		MaxLevel:     DefaultMaxLevel,
		Palette:      DefaultPalette(),
		WinDelay:     DefaultWinDelay,
		DrawDelay:    DefaultDrawDelay,
	}
}

// Validate reports the first problem with the settings, wrapped in
// ErrInvalidSettings.
func (s Settings) Validate() error {
	switch {
	case s.Rows <= 0 || s.Cols <= 0:
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidSettings, s.Rows, s.Cols)
	case s.WinLength < 2:
		return fmt.Errorf("%w: win length must be at least 2, got %d", ErrInvalidSettings, s.WinLength)
	case s.WinLength > max(s.Rows, s.Cols):
		return fmt.Errorf("%w: win length %d does not fit a %dx%d board", ErrInvalidSettings, s.WinLength, s.Rows, s.Cols)
	case s.RoundSeconds <= 0:
		return fmt.Errorf("%w: round seconds must be positive, got %d", ErrInvalidSettings, s.RoundSeconds)
	case s.MaxLevel < 1:
		return fmt.Errorf("%w: max level must be at least 1, got %d", ErrInvalidSettings, s.MaxLevel)
	case len(s.Palette) < 2:
		return fmt.Errorf("%w: palette needs at least 2 colors, got %d", ErrInvalidSettings, len(s.Palette))
	case s.WinDelay < 0 || s.DrawDelay < 0:
		return fmt.Errorf("%w: transition delays must not be negative", ErrInvalidSettings)
	}

	seen := make(map[Color]bool, len(s.Palette))
	for _, c := range s.Palette {
		if c == NoColor {
			return fmt.Errorf("%w: palette contains an empty color", ErrInvalidSettings)
		}
		if seen[c] {
			return fmt.Errorf("%w: palette color %q repeated", ErrInvalidSettings, c)
		}
		seen[c] = true
	}
	return nil
}

// RosterSize returns how many colors compete at the given level.
// Level 1 has two players and each level adds one, capped at the palette size.
func (s Settings) RosterSize(level int) int {
	return min(2+level-1, len(s.Palette))
}

// clone returns a copy that does not share the palette slice.
func (s Settings) clone() Settings {
	s.Palette = append([]Color(nil), s.Palette...)
	return s
}
