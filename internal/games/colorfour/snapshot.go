package colorfour

import "github.com/vovakirdan/colorfour/internal/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying        GameStateType = "playing"
	StateWinPending     GameStateType = "win_pending"
	StateDrawPending    GameStateType = "draw_pending"
	StateTimeoutPending GameStateType = "timeout_pending"
	StateFinished       GameStateType = "finished"
	StatePausedSmall    GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Level     int
	Score     int
	TimeLeft  int
	Turn      string
	Roster    []string
	Board     [][]string
	CursorRow int
	CursorCol int
	Message   string
	Muted     bool
	Sparks    int // Live celebration particles, 0 when idle
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	e := g.engine

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case e.Finished():
		state = StateFinished
	case e.Phase() == engine.PhaseWinPending:
		state = StateWinPending
	case e.Phase() == engine.PhaseDrawPending:
		state = StateDrawPending
	case e.Phase() == engine.PhaseTimeoutPending:
		state = StateTimeoutPending
	}

	roster := e.Roster()
	names := make([]string, len(roster))
	for i, c := range roster {
		names[i] = string(c)
	}

	grid := e.Board().Grid()
	board := make([][]string, len(grid))
	for r, row := range grid {
		board[r] = make([]string, len(row))
		for c, cell := range row {
			board[r][c] = string(cell)
		}
	}

	sparks := 0
	if g.sparkle != nil {
		sparks = len(g.sparkle.Sparks())
	}

	return Snapshot{
		Tick:      g.tick,
		Level:     e.Level(),
		Score:     e.Score(),
		TimeLeft:  e.TimeLeft(),
		Turn:      string(e.CurrentColor()),
		Roster:    names,
		Board:     board,
		CursorRow: g.cursorRow,
		CursorCol: g.cursorCol,
		Message:   g.message,
		Muted:     g.muted,
		Sparks:    sparks,
		State:     state,
	}
}
