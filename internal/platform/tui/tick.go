// Package tui provides the Bubble Tea integration for Color Four.
// It handles the terminal UI loop, input mapping, and score recording.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// bell is the terminal bell. It goes out inside a rendered frame so it
// shares the program's writer with the rest of the output.
const bell = "\a"

// TickMsg is sent to trigger a game simulation tick. ID names the model whose
// tick chain sent it.
type TickMsg struct {
	ID   uint64
	Time time.Time
}

var lastModelID atomic.Uint64

// nextModelID hands out tick chain IDs.
func nextModelID() uint64 {
	return lastModelID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages for model id
// at the specified rate.
func tickCmd(id uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
