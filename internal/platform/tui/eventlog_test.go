package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorfour/internal/engine"
)

func TestEventLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	el := NewEventLogger(logger)

	el.Notify(engine.LevelChanged{Level: 2, RosterSize: 3})
	el.Notify(engine.TurnChanged{Color: engine.Red})
	if buf.Len() != 0 {
		t.Fatalf("debug events logged at info level: %q", buf.String())
	}

	el.Notify(engine.RoundEnded{Outcome: engine.OutcomeWin, Color: engine.Red, Level: 2})
	out := buf.String()
	for _, want := range []string{"round ended", "outcome=win", "game_level=2", "winner=red"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %q", out, want)
		}
	}

	buf.Reset()
	el.Notify(engine.RoundEnded{Outcome: engine.OutcomeTimeout, Level: 4})
	if out := buf.String(); !strings.Contains(out, "outcome=timeout") || strings.Contains(out, "winner") {
		t.Errorf("timeout log = %q", out)
	}
}

func TestEventLoggerDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	el := NewEventLogger(logger)

	el.Notify(engine.LevelChanged{Level: 7, RosterSize: 5})
	el.Notify(engine.LevelReset{Level: 7})
	el.Notify(engine.GameFinished{Score: 10})

	out := buf.String()
	for _, want := range []string{"level started", "colors=5", "level reset", "game finished", "score=10"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %q", out, want)
		}
	}
	// Both level lines carry the game level next to the severity.
	if n := strings.Count(out, "game_level=7"); n != 2 {
		t.Errorf("log %q has %d game_level=7 fields, want 2", out, n)
	}
}
