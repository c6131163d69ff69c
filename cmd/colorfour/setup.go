package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/colorfour/internal/config"
	"github.com/vovakirdan/colorfour/internal/core"
	"github.com/vovakirdan/colorfour/internal/games/colorfour"
	"github.com/vovakirdan/colorfour/internal/registry"
	"github.com/vovakirdan/colorfour/internal/storage"
)

// loadGameConfig resolves --config, env overrides and --difficulty, and
// hands the result to the game factory.
func loadGameConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := colorfour.SetConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newGame builds the game to play. Color Four takes cfg as given; other
// games come from the registry.
func newGame(gameID string, cfg config.Config) (registry.Game, error) {
	if gameID != colorfour.ID {
		return registry.Create(gameID)
	}
	g, err := colorfour.NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// newLogger builds the logger from --log-file and --log-level. Without a log
// file it writes to fallback. The returned func closes the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	return logger, closeFn, nil
}

// runtimeConfig sizes the screen to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database, warning and continuing without it on
// failure.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// localUser names the player for locally saved scores.
func localUser() string {
	for _, key := range []string{"USER", "USERNAME", "LOGNAME"} {
		if u := os.Getenv(key); u != "" {
			return u
		}
	}
	return "player"
}
