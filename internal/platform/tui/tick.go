// Package tui provides the Bubble Tea integration for the light cycle arena.
// It handles the terminal UI loop, input mapping, and match orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger a render frame. Simulation ticks are gated
// separately so the frame rate can exceed the tick rate.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the
// specified rate.
func frameCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
