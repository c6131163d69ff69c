// Package colorfour is the terminal front end of the Color Four engine:
// cursor input, status messages, the win celebration and sound cues.
package colorfour

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/colorfour/internal/config"
	"github.com/vovakirdan/colorfour/internal/core"
	"github.com/vovakirdan/colorfour/internal/engine"
	"github.com/vovakirdan/colorfour/internal/registry"
)

// ID is the registry and score table identifier.
const ID = "colorfour"

// Status messages.
const (
	msgGameOver   = "Game Over! You completed all levels."
	msgLevelReset = "Level Reset!"
)

// Game adapts an engine.Engine to the registry.Game frame loop.
type Game struct {
	cfg      config.Config
	engine   *engine.Engine
	sched    *engine.StepScheduler
	observer engine.Listener
	rng      *rand.Rand
	tick     uint64

	frame     time.Duration // Wall time covered by one Step
	secondAcc time.Duration // Time accumulated toward the next engine tick

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool

	cursorRow int
	cursorCol int
	message   string
	finale    engine.Timer // Delayed game over message
	sparkle   *Sparkle
	muted     bool

	// Per-frame outputs
	bell     bool
	recorded bool // Run already reported to the platform
	runOver  *core.GameState
}

// Package-level config used by the registry factory.
var selectedConfig = config.Default()

// SetConfig sets the configuration used by games created through the registry.
func SetConfig(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	selectedConfig = cfg
	return nil
}

// New creates a game with the configuration selected by SetConfig.
func New() *Game {
	return &Game{cfg: selectedConfig}
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{cfg: cfg}, nil
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Color Four"
}

// SetListener attaches an observer that receives every engine event.
// It takes effect on the next Reset.
func (g *Game) SetListener(l engine.Listener) {
	g.observer = l
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.frame = cfg.FrameDuration()
	g.secondAcc = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.message = ""
	g.finale = nil
	g.sparkle = nil
	g.muted = !g.cfg.Effects.Sound
	g.bell = false
	g.recorded = false
	g.runOver = nil

	g.sched = engine.NewStepScheduler()
	eng, err := engine.New(
		engine.WithSettings(g.cfg.Settings()),
		engine.WithScheduler(g.sched),
		engine.WithListener(engine.Listeners{g, g.observer}),
	)
	if err != nil {
		// Configs are validated by SetConfig and NewWithConfig.
		panic(fmt.Sprintf("colorfour: %v", err))
	}
	g.engine = eng

	g.cursorRow = 0
	g.cursorCol = g.cfg.Board.Cols / 2

	g.checkScreenSize()
}

// Resize adapts the layout to new terminal dimensions without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.bell = false
	g.runOver = nil

	if g.tooSmall {
		return g.result()
	}

	if in.Has(core.ActionMute) {
		g.muted = !g.muted
	}

	switch {
	case in.Has(core.ActionRestart):
		g.restart()
	case in.Has(core.ActionResetLevel):
		g.engine.ResetLevel()
	default:
		g.moveCursor(in)
		if in.Has(core.ActionDrop) {
			g.drop()
		}
	}

	g.advance(g.frame)

	if g.engine.Finished() && !g.recorded {
		g.recorded = true
		state := g.State()
		g.runOver = &state
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{
		State:   g.State(),
		Bell:    g.bell,
		RunOver: g.runOver,
	}
}

// moveCursor moves the selection within the board.
func (g *Game) moveCursor(in core.InputFrame) {
	row, col := g.cursorRow, g.cursorCol
	switch {
	case in.Has(core.ActionUp):
		row--
	case in.Has(core.ActionDown):
		row++
	case in.Has(core.ActionLeft):
		col--
	case in.Has(core.ActionRight):
		col++
	}
	board := core.NewRect(0, 0, g.cfg.Board.Cols, g.cfg.Board.Rows)
	if board.Contains(col, row) {
		g.cursorRow, g.cursorCol = row, col
	}
}

// drop attempts a move at the cursor. Every attempt during an active round
// clicks, even onto an occupied cell.
func (g *Game) drop() {
	if !g.engine.Active() {
		return
	}
	g.cue()
	g.engine.AttemptMove(g.cursorRow, g.cursorCol)
}

// restart reports an unfinished scoring run before starting over.
func (g *Game) restart() {
	if !g.recorded && g.engine.Score() > 0 {
		state := g.State()
		g.runOver = &state
	}
	g.recorded = false
	g.engine.ResetGame()
}

// advance moves the clock forward: pending transitions first, then the
// round countdown, then effects.
func (g *Game) advance(dt time.Duration) {
	g.sched.Advance(dt)

	if g.engine.Active() {
		g.secondAcc += dt
		for g.secondAcc >= time.Second && g.engine.Active() {
			g.secondAcc -= time.Second
			g.engine.Tick()
		}
	}

	if g.sparkle != nil && !g.sparkle.Advance(dt) {
		g.sparkle = nil
	}
}

// cue requests the terminal bell unless muted.
func (g *Game) cue() {
	if !g.muted {
		g.bell = true
	}
}

// Notify receives engine events. It is called from inside engine.New, so it
// must not reach back into g.engine.
func (g *Game) Notify(ev engine.Event) {
	switch ev := ev.(type) {
	case engine.LevelChanged:
		g.message = ""
		g.secondAcc = 0
		if g.finale != nil {
			g.finale.Stop()
			g.finale = nil
		}
	case engine.RoundEnded:
		switch ev.Outcome {
		case engine.OutcomeWin:
			g.message = fmt.Sprintf("Player %s wins Level %d!", strings.ToUpper(string(ev.Color)), ev.Level)
			g.celebrate()
			g.cue()
		case engine.OutcomeDraw:
			g.message = fmt.Sprintf("Level %d Draw!", ev.Level)
		case engine.OutcomeTimeout:
			g.message = fmt.Sprintf("Time Up! Level %d Draw!", ev.Level)
		}
	case engine.GameFinished:
		g.finale = g.sched.AfterFunc(g.cfg.Round.WinDelay, func() {
			g.finale = nil
			g.message = msgGameOver
		})
	case engine.LevelReset:
		g.message = msgLevelReset
	}
}

// celebrate starts the sparkle effect, replacing one still running.
func (g *Game) celebrate() {
	fx := g.cfg.Effects
	if fx.Sparks == 0 || fx.SparkFrames == 0 {
		return
	}
	g.sparkle = NewSparkle(g.rng, fx.Sparks, fx.SparkFrames, fx.SparkInterval, g.screenW, g.screenH)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		Level:    g.engine.Level(),
		GameOver: g.engine.Finished(),
	}
}

// Message returns the current status line.
func (g *Game) Message() string {
	return g.message
}

// Muted reports whether sound cues are off.
func (g *Game) Muted() bool {
	return g.muted
}

// Engine exposes the underlying engine for inspection.
func (g *Game) Engine() *engine.Engine {
	return g.engine
}
