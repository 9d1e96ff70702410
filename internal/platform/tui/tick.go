// Package tui is the Bubble Tea front end: the game loop, key mapping,
// the menu and scoreboard, and the SSH server that serves them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultTickRate = 30

// TickMsg advances the game by one frame.
type TickMsg time.Time

// frameInterval is the time between ticks at rate frames per second.
func frameInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = defaultTickRate
	}
	return time.Second / time.Duration(rate)
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(frameInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
