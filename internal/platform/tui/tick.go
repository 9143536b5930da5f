// Package tui provides the Bubble Tea integration for the game.
// It handles the language menu, the board and keyboard views, input mapping
// and the cosmetic timers between screens.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// NoticeExpiredMsg is sent when a transient notice should disappear.
// Gen identifies the notice; a newer notice makes older messages stale.
type NoticeExpiredMsg struct {
	Gen int
}

// RevealMsg is sent when the result screen should replace the board.
// Gen identifies the finished game; a restart makes older messages stale.
type RevealMsg struct {
	Gen int
}

// noticeCmd returns a one-shot command that expires notice gen after d.
func noticeCmd(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return NoticeExpiredMsg{Gen: gen}
	})
}

// revealCmd returns a one-shot command that reveals result gen after d.
// A zero delay reveals on the next update.
func revealCmd(d time.Duration, gen int) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return RevealMsg{Gen: gen} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return RevealMsg{Gen: gen}
	})
}
