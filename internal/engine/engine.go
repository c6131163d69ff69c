package engine

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidLevel is returned by StartLevel for a level outside 1..MaxLevel.
var ErrInvalidLevel = errors.New("engine: invalid level")

// Phase is the round state machine position.
type Phase int

const (
	PhaseActive         Phase = iota // Accepting moves and ticks
	PhaseWinPending                  // Won, waiting to start the next level
	PhaseDrawPending                 // Board full, waiting to retry the level
	PhaseTimeoutPending              // Time up, waiting to retry the level
	PhaseFinished                    // Final level won; only ResetGame leaves this
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseWinPending:
		return "win_pending"
	case PhaseDrawPending:
		return "draw_pending"
	case PhaseTimeoutPending:
		return "timeout_pending"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// MoveKind classifies the result of AttemptMove.
type MoveKind int

const (
	MoveIgnored  MoveKind = iota // Round inactive, out of bounds, or cell occupied
	MoveContinue                 // Disc placed, turn advanced
	MoveWin                      // Disc placed and completed a run
	MoveDraw                     // Disc placed and filled the board
)

func (k MoveKind) String() string {
	switch k {
	case MoveIgnored:
		return "ignored"
	case MoveContinue:
		return "continue"
	case MoveWin:
		return "win"
	case MoveDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// MoveResult is what AttemptMove reports back to the presentation layer.
type MoveResult struct {
	Kind  MoveKind
	Color Color // Color that was placed; empty for MoveIgnored
	Row   int
	Col   int

	// GameFinished is set when this move won the final level.
	GameFinished bool
}

// Engine owns all mutable game state. It is not safe for concurrent use:
// moves, ticks and scheduler callbacks must run on one goroutine.
type Engine struct {
	settings  Settings
	scheduler Scheduler
	listener  Listener

	board    *Board
	roster   []Color
	turn     int
	level    int
	score    int
	timeLeft int
	phase    Phase
	outcome  Outcome

	pending    Timer
	generation uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithSettings replaces the default settings.
func WithSettings(s Settings) Option {
	return func(e *Engine) {
		e.settings = s.clone()
	}
}

// WithScheduler sets the scheduler used for delayed level transitions.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) {
		e.scheduler = s
	}
}

// WithListener sets the event listener.
func WithListener(l Listener) Option {
	return func(e *Engine) {
		e.listener = l
	}
}

// New creates an engine at level 1 with an active round.
// Without WithScheduler the engine owns a StepScheduler, reachable through
// Scheduler, which the caller must advance.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{settings: DefaultSettings()}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.settings.Validate(); err != nil {
		return nil, err
	}
	if e.scheduler == nil {
		e.scheduler = NewStepScheduler()
	}
	if e.listener == nil {
		e.listener = nopListener{}
	}

	e.ResetGame()
	return e, nil
}

// CreateBoard replaces the board with an empty one.
func (e *Engine) CreateBoard() {
	e.board = NewBoard(e.settings.Rows, e.settings.Cols)
	e.emit(BoardChanged{Board: e.board.Clone()})
}

// AttemptMove places the current color at (row, col).
// Moves while the round is inactive, outside the board, or onto an occupied
// cell are ignored without any state change.
func (e *Engine) AttemptMove(row, col int) MoveResult {
	if e.phase != PhaseActive || !e.board.Empty(row, col) {
		return MoveResult{Kind: MoveIgnored, Row: row, Col: col}
	}

	color := e.roster[e.turn]
	e.board.place(row, col, color)
	e.emit(BoardChanged{Board: e.board.Clone()})

	res := MoveResult{Color: color, Row: row, Col: col}
	switch {
	case e.board.WinsAt(row, col, e.settings.WinLength):
		res.Kind = MoveWin
		res.GameFinished = e.onRoundWon(color)
	case e.board.Full():
		res.Kind = MoveDraw
		e.onRoundDrawn(OutcomeDraw)
	default:
		res.Kind = MoveContinue
		e.turn = (e.turn + 1) % len(e.roster)
		e.emit(TurnChanged{Color: e.roster[e.turn]})
	}
	return res
}

// onRoundWon scores the win and either schedules the next level or finishes
// the game. It returns true when the game is finished.
func (e *Engine) onRoundWon(color Color) bool {
	e.score++
	e.outcome = OutcomeWin
	e.emit(ScoreChanged{Score: e.score})

	if e.level >= e.settings.MaxLevel {
		e.phase = PhaseFinished
		e.cancelPending()
		e.emit(RoundEnded{Outcome: OutcomeWin, Color: color, Level: e.level})
		e.emit(GameFinished{Score: e.score})
		return true
	}

	e.phase = PhaseWinPending
	e.emit(RoundEnded{Outcome: OutcomeWin, Color: color, Level: e.level})
	next := e.level + 1
	e.schedule(e.settings.WinDelay, func() { e.startLevel(next) })
	return false
}

// onRoundDrawn deactivates the round and schedules a retry of the level.
func (e *Engine) onRoundDrawn(outcome Outcome) {
	e.outcome = outcome
	if outcome == OutcomeTimeout {
		e.phase = PhaseTimeoutPending
	} else {
		e.phase = PhaseDrawPending
	}
	e.emit(RoundEnded{Outcome: outcome, Level: e.level})
	level := e.level
	e.schedule(e.settings.DrawDelay, func() { e.startLevel(level) })
}

// Tick counts down one second. It does nothing while the round is inactive.
// Reaching zero ends the round as a timeout draw.
func (e *Engine) Tick() {
	if e.phase != PhaseActive {
		return
	}
	e.timeLeft--
	if e.timeLeft < 0 {
		e.timeLeft = 0
	}
	e.emit(TimeChanged{SecondsLeft: e.timeLeft})
	if e.timeLeft == 0 {
		e.onRoundDrawn(OutcomeTimeout)
	}
}

// StartLevel begins level n with a fresh board, roster and timer, cancelling
// any pending transition.
func (e *Engine) StartLevel(n int) error {
	if n <= 0 || n > e.settings.MaxLevel {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidLevel, n, e.settings.MaxLevel)
	}
	e.startLevel(n)
	return nil
}

func (e *Engine) startLevel(n int) {
	e.cancelPending()
	e.generation++

	e.level = n
	e.roster = append([]Color(nil), e.settings.Palette[:e.settings.RosterSize(n)]...)
	e.turn = 0
	e.timeLeft = e.settings.RoundSeconds
	e.outcome = OutcomeNone
	e.phase = PhaseActive

	e.emit(LevelChanged{Level: e.level, RosterSize: len(e.roster)})
	e.emit(ScoreChanged{Score: e.score})
	e.emit(TimeChanged{SecondsLeft: e.timeLeft})
	e.CreateBoard()
	e.emit(TurnChanged{Color: e.roster[e.turn]})
}

// ResetGame returns to level 1 with a zero score.
func (e *Engine) ResetGame() {
	e.cancelPending()
	e.score = 0
	e.startLevel(1)
}

// ResetLevel restarts the current level without touching the score. It is
// honoured only while the round is over (won, drawn or timed out) or when
// the board is already full, and never after the game has finished.
// It reports whether the level was restarted.
func (e *Engine) ResetLevel() bool {
	if e.phase == PhaseFinished {
		return false
	}
	if e.phase == PhaseActive && !e.board.Full() {
		return false
	}
	e.startLevel(e.level)
	e.emit(LevelReset{Level: e.level})
	return true
}

// schedule replaces any pending transition with fn after d. The callback is
// dropped if a level has started since it was scheduled.
func (e *Engine) schedule(d time.Duration, fn func()) {
	e.cancelPending()
	gen := e.generation
	e.pending = e.scheduler.AfterFunc(d, func() {
		if gen != e.generation {
			return
		}
		e.pending = nil
		fn()
	})
}

func (e *Engine) cancelPending() {
	if e.pending != nil {
		e.pending.Stop()
		e.pending = nil
	}
}

func (e *Engine) emit(ev Event) {
	e.listener.Notify(ev)
}

// Level returns the current level, starting at 1.
func (e *Engine) Level() int {
	return e.level
}

// Score returns the number of levels won in this run.
func (e *Engine) Score() int {
	return e.score
}

// TimeLeft returns the seconds left in the round.
func (e *Engine) TimeLeft() int {
	return e.timeLeft
}

// Active reports whether moves and ticks are accepted.
func (e *Engine) Active() bool {
	return e.phase == PhaseActive
}

// Phase returns the round state.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Finished reports whether the final level has been won.
func (e *Engine) Finished() bool {
	return e.phase == PhaseFinished
}

// LastOutcome returns how the current round ended, or OutcomeNone while it runs.
func (e *Engine) LastOutcome() Outcome {
	return e.outcome
}

// Roster returns a copy of the colors competing in this level.
func (e *Engine) Roster() []Color {
	return append([]Color(nil), e.roster...)
}

// Turn returns the index of the color on turn.
func (e *Engine) Turn() int {
	return e.turn
}

// CurrentColor returns the color on turn.
func (e *Engine) CurrentColor() Color {
	return e.roster[e.turn]
}

// Board returns a copy of the board.
func (e *Engine) Board() *Board {
	return e.board.Clone()
}

// Rows returns the board height.
func (e *Engine) Rows() int {
	return e.settings.Rows
}

// Cols returns the board width.
func (e *Engine) Cols() int {
	return e.settings.Cols
}

// Settings returns a copy of the engine settings.
func (e *Engine) Settings() Settings {
	return e.settings.clone()
}

// TransitionPending reports whether a level transition is waiting to fire.
func (e *Engine) TransitionPending() bool {
	return e.pending != nil
}
