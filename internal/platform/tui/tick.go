// Package tui provides the Bubble Tea front end for the arena: the frame
// loop, input mapping, effect rendering and score persistence.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per rendered frame. The simulation clock converts
// the time between frames into fixed ticks.
type FrameMsg time.Time

// frameCmd schedules the next frame at the given rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
