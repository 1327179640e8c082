// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/tagging-football-cli/clock"
	"github.com/user/tagging-football-cli/tui/styles"
)

// StatusBarState holds the match header state for the status bar.
type StatusBarState struct {
	// HomeName and AwayName are the side display names
	HomeName string
	AwayName string
	// HomeScore and AwayScore are the derived goal tallies
	HomeScore int
	AwayScore int
	// Phase is the current clock phase
	Phase clock.Phase
	// Running indicates if the clock is ticking
	Running bool
	// Elapsed is the current elapsed match time
	Elapsed time.Duration
	// ActiveHome indicates which side new events go to
	ActiveHome bool
}

// StatusBar renders the match header: scoreline, phase, and the stopwatch.
// The stopwatch always shows plain M:SS; the phase-aware 45+X/90+X rendering
// belongs to the event log, not the header.
func StatusBar(state StatusBarState, width int) string {
	clockIcon := "⏸"
	if state.Running {
		clockIcon = "▶"
	}

	home := state.HomeName
	away := state.AwayName
	if state.ActiveHome {
		home = "● " + home
	} else {
		away = away + " ●"
	}

	left := fmt.Sprintf(" %s %d - %d %s", home, state.HomeScore, state.AwayScore, away)
	right := fmt.Sprintf("%s  %s %s ", state.Phase.Label(), clockIcon, clock.FormatPlain(state.Elapsed))

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	middle := ""
	for i := 0; i < padding; i++ {
		middle += " "
	}

	statusBarStyle := lipgloss.NewStyle().
		Background(styles.DarkPurple).
		Foreground(styles.LightLavender).
		Bold(true).
		Width(width)

	return statusBarStyle.Render(left + middle + right)
}
