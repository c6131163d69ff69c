package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorfour/internal/games/colorfour"
	"github.com/vovakirdan/colorfour/internal/platform/tui"
	"github.com/vovakirdan/colorfour/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing right away, skipping the menu.

Controls:
  Arrows/WASD  - Move the cursor
  Space/Enter  - Place a disc
  L            - Reset level (after a round ends, or on a full board)
  R            - Reset game / play again
  M            - Mute or unmute
  Ctrl+S       - Save a screenshot
  B/Esc, Q     - Quit

Difficulty options:
  easy   - 45 second rounds, longer pause after a draw
  normal - 30 second rounds
  hard   - 20 second rounds

Examples:
  colorfour play
  colorfour play --difficulty hard
  colorfour play --config ./my-colorfour.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := colorfour.ID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'colorfour list' to see available games)", gameID)
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := newGame(gameID, cfg)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "game", gameID, "difficulty", flagDifficulty)
	return tui.Run(game, runtimeConfig(), tui.Options{
		Store:  store,
		Player: localUser(),
		Logger: logger,
	})
}
