// colorfour is a terminal color-matching game: line up four of the color on
// turn before the countdown runs out, through ten levels of growing rosters.
//
// Usage:
//
//	colorfour                - Start the menu
//	colorfour play           - Play straight away
//	colorfour serve          - Start SSH server for remote play
//	colorfour scores         - Show high scores
//	colorfour config         - Print the effective configuration
//	colorfour list           - List available games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible effects
//	--db <path>           - Set database path (default: ~/.colorfour/scores.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/colorfour/internal/games/colorfour"
	"github.com/vovakirdan/colorfour/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colorfour",
	Short: "Color Four - line up four before the clock runs out",
	Long: `Color Four is a terminal game for up to five colors taking turns on a
6x7 board. Place discs anywhere, line up four of one color in a row,
column or diagonal, and win all ten levels before each 30 second
countdown expires.

Available commands:
  play     - Play a game directly
  menu     - Interactive menu (the default)
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration
  list     - Show all available games

Examples:
  colorfour
  colorfour play --difficulty easy
  colorfour serve --ssh :2222
  COLORFOUR_ROUND_SECONDS=20 colorfour play`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (local play logs nothing by default)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
