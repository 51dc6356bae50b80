// Package tui provides the Bubble Tea frontend for the snake game.
// It handles the terminal UI loop, input mapping and the tick clock.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after
// period. The model schedules the next one only while the game is running,
// so no tick fires after game over.
func tickCmd(period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
