package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorfour/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode. This is what running colorfour with
no command does.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  B/Esc        - Back to the menu from a game
  Q            - Quit

Examples:
  colorfour menu
  colorfour menu --fps 30
  colorfour menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if _, err := loadGameConfig(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return tui.RunSession(runtimeConfig(), tui.Options{
		Store:  store,
		Player: localUser(),
		Logger: logger,
	})
}
