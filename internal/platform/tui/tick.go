// Package tui provides the Bubble Tea integration for the career arcade.
// It handles the terminal UI loop, input mapping, and session orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Serial identifies the game modal whose loop scheduled it.
type TickMsg struct {
	Time   time.Time
	Serial uint64
}

// RotateMsg is sent to check the carousel's auto-advance deadline.
type RotateMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, serial uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Serial: serial}
	})
}

// rotateCmd polls the carousel deadline twice a second.
func rotateCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return RotateMsg(t)
	})
}
