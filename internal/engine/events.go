package engine

// Event is something the engine reports to its listener.
type Event interface {
	engineEvent()
}

// Outcome describes how a round ended.
type Outcome int

const (
	OutcomeNone    Outcome = iota // Round still running
	OutcomeWin                    // A color completed a run
	OutcomeDraw                   // Board filled with no run
	OutcomeTimeout                // Countdown reached zero
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWin:
		return "win"
	case OutcomeDraw:
		return "draw"
	case OutcomeTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// BoardChanged carries a snapshot of the board after it changed.
type BoardChanged struct {
	Board *Board
}

func (BoardChanged) engineEvent() {}

// TurnChanged names the color now on turn.
type TurnChanged struct {
	Color Color
}

func (TurnChanged) engineEvent() {}

// LevelChanged is sent whenever a level starts.
type LevelChanged struct {
	Level      int
	RosterSize int
}

func (LevelChanged) engineEvent() {}

// ScoreChanged carries the new score.
type ScoreChanged struct {
	Score int
}

func (ScoreChanged) engineEvent() {}

// TimeChanged carries the seconds left in the round.
type TimeChanged struct {
	SecondsLeft int
}

func (TimeChanged) engineEvent() {}

// RoundEnded is sent once per round. Color is set only for OutcomeWin.
type RoundEnded struct {
	Outcome Outcome
	Color   Color
	Level   int
}

func (RoundEnded) engineEvent() {}

// GameFinished is sent after the final level is won.
type GameFinished struct {
	Score int
}

func (GameFinished) engineEvent() {}

// LevelReset is sent when the player restarts the current level.
type LevelReset struct {
	Level int
}

func (LevelReset) engineEvent() {}

// Listener receives engine events synchronously, on the caller's goroutine.
type Listener interface {
	Notify(ev Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(ev Event)

// Notify calls f(ev).
func (f ListenerFunc) Notify(ev Event) {
	f(ev)
}

// Listeners fans an event out to every listener in order.
type Listeners []Listener

// Notify delivers ev to each non-nil listener.
func (ls Listeners) Notify(ev Event) {
	for _, l := range ls {
		if l != nil {
			l.Notify(ev)
		}
	}
}

type nopListener struct{}

func (nopListener) Notify(Event) {}
