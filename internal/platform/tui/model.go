package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorfour/internal/core"
	"github.com/vovakirdan/colorfour/internal/registry"
	"github.com/vovakirdan/colorfour/internal/storage"
)

// Options carries the per-session services a GameModel uses.
// Every field is optional.
type Options struct {
	// Store receives finished runs. Nil disables score saving.
	Store *storage.Store

	// Player is recorded with each saved run.
	Player string

	// Logger receives engine events and storage errors.
	Logger *log.Logger

	// Renderer styles the screen. SSH sessions pass one bound to the session.
	Renderer *lipgloss.Renderer

	// ScreenshotDir is where ctrl+s writes screen dumps.
	// Defaults to ~/.colorfour/screenshots.
	ScreenshotDir string
}

// GameModel is the Bubble Tea model that drives one game.
type GameModel struct {
	id         uint64 // Tick chain owner
	game       registry.Game
	screen     *core.Screen
	renderer   *ScreenRenderer
	opts       Options
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	standalone bool // Owns the program: back and quit end it
	bell       bool // Last tick asked for the terminal bell
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. Games that emit engine events get an
// EventLogger when opts.Logger is set.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if src, ok := game.(registry.EventSource); ok && opts.Logger != nil {
		src.SetListener(NewEventLogger(opts.Logger.With("game", game.ID())))
	}

	return GameModel{
		id:         nextModelID(),
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:   NewScreenRenderer(opts.Renderer),
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.id, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		// Ticks from a replaced model would start a second chain.
		if msg.ID != m.id {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input. Game actions are buffered until the
// next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.abandon()
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.abandon()
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize keeps the game running when it can follow the new size,
// and restarts it otherwise.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick runs one simulation frame.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	// A stopped model lets its tick chain die.
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.bell = result.Bell
	m.inputFrame.Clear()

	if result.RunOver != nil {
		m.saveRun(*result.RunOver)
	}

	return m, tickCmd(m.id, m.config.TickRate)
}

// abandon records a scoring run the player walks away from.
func (m *GameModel) abandon() {
	if !m.gameState.GameOver {
		m.saveRun(m.game.State())
	}
}

// saveRun stores a run with at least one level won.
func (m *GameModel) saveRun(state core.GameState) {
	if m.opts.Store == nil || state.Score <= 0 {
		return
	}
	id, err := m.opts.Store.SaveScore(m.game.ID(), m.opts.Player, state.Score, state.Level)
	if m.opts.Logger == nil {
		return
	}
	if err != nil {
		m.opts.Logger.Error("could not save score", "error", err)
		return
	}
	m.opts.Logger.Info("score saved", "id", id, "player", m.opts.Player, "score", state.Score, "game_level", state.Level)
}

// saveScreenshot writes the current screen to a text file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logWarn("could not resolve screenshot directory", err)
			return
		}
		dir = filepath.Join(home, ".colorfour", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logWarn("could not create screenshot directory", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logWarn("could not save screenshot", err)
	}
}

func (m *GameModel) logWarn(msg string, err error) {
	if m.opts.Logger != nil {
		m.opts.Logger.Warn(msg, "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	m.game.Render(m.screen)
	frame := m.renderer.Render(m.screen)
	if m.bell {
		frame = bell + frame
	}
	return frame
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewGameModel(game, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
