// Package tui provides the Bubble Tea integration for the game platform.
// It acts as the timing, input and viewport collaborator for a game.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame to advance the simulation.
type TickMsg time.Time

// SpawnMsg is sent once per spawn interval to deliver a sampled obstacle height.
type SpawnMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one frame.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// spawnCmd returns a Bubble Tea command that sends a spawn after interval.
func spawnCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return SpawnMsg(t)
	})
}
