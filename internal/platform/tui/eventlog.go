package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorfour/internal/engine"
)

// EventLogger writes engine events to a structured logger.
// Round results go out at info level, everything else at debug.
type EventLogger struct {
	logger *log.Logger
}

// NewEventLogger returns an engine.Listener that logs to l.
func NewEventLogger(l *log.Logger) *EventLogger {
	return &EventLogger{logger: l}
}

// Notify implements engine.Listener.
func (e *EventLogger) Notify(ev engine.Event) {
	switch ev := ev.(type) {
	case engine.LevelChanged:
		e.logger.Debug("level started", "game_level", ev.Level, "colors", ev.RosterSize)
	case engine.ScoreChanged:
		e.logger.Debug("score changed", "score", ev.Score)
	case engine.TurnChanged:
		e.logger.Debug("turn", "color", string(ev.Color))
	case engine.RoundEnded:
		if ev.Outcome == engine.OutcomeWin {
			e.logger.Info("round ended", "outcome", ev.Outcome, "game_level", ev.Level, "winner", string(ev.Color))
			return
		}
		e.logger.Info("round ended", "outcome", ev.Outcome, "game_level", ev.Level)
	case engine.LevelReset:
		e.logger.Info("level reset", "game_level", ev.Level)
	case engine.GameFinished:
		e.logger.Info("game finished", "score", ev.Score)
	}
}
