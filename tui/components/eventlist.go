package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/tagging-football-cli/clock"
	"github.com/user/tagging-football-cli/event"
	"github.com/user/tagging-football-cli/tui/styles"
)

// EventItem is one row of the event log list.
type EventItem struct {
	// ID is the event's unique identifier
	ID string
	// TimeMs is milliseconds from match start
	TimeMs int64
	// Team is the side the event belongs to
	Team event.Team
	// Label is the pre-rendered display text
	Label string
	// IsStamp marks quality-bearing events, used to pick the edit form
	IsStamp bool
	// Bad marks a bad-quality stamp
	Bad bool
}

// EventListState holds the state for the event log list.
type EventListState struct {
	// Items is the time-sorted event rows
	Items []EventItem
	// SelectedIndex is the currently selected row index
	SelectedIndex int
	// ScrollOffset is the scroll position
	ScrollOffset int
}

// MoveUp moves the selection one row up.
func (s *EventListState) MoveUp() {
	if s.SelectedIndex > 0 {
		s.SelectedIndex--
	}
}

// MoveDown moves the selection one row down.
func (s *EventListState) MoveDown() {
	if s.SelectedIndex < len(s.Items)-1 {
		s.SelectedIndex++
	}
}

// Selected returns the selected row, or nil when the list is empty.
func (s *EventListState) Selected() *EventItem {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Items) {
		return nil
	}
	return &s.Items[s.SelectedIndex]
}

// EventList renders the event log as a scrollable list, newest rows at the
// bottom. Event times render phase-aware (45+X / 90+X) using the given phase.
func EventList(state EventListState, width, height int, phase clock.Phase) string {
	var lines []string
	lines = append(lines, styles.Header.Render(" Events"))

	rows := height - 1
	if rows < 3 {
		rows = 3
	}

	if len(state.Items) == 0 {
		empty := lipgloss.NewStyle().Foreground(styles.Purple).Italic(true)
		lines = append(lines, empty.Render(" No events yet"))
		return strings.Join(lines, "\n")
	}

	// Keep the selection visible within the window.
	offset := state.ScrollOffset
	if state.SelectedIndex < offset {
		offset = state.SelectedIndex
	} else if state.SelectedIndex >= offset+rows {
		offset = state.SelectedIndex - rows + 1
	}
	if offset < 0 {
		offset = 0
	}

	end := offset + rows
	if end > len(state.Items) {
		end = len(state.Items)
	}

	for i := offset; i < end; i++ {
		item := state.Items[i]

		timeStr := clock.FormatElapsed(time.Duration(item.TimeMs)*time.Millisecond, phase)
		sideStyle := styles.HomeAccent
		sideMark := "H"
		if item.Team == event.TeamAway {
			sideStyle = styles.AwayAccent
			sideMark = "A"
		}

		qualityMark := ""
		if item.IsStamp && item.Bad {
			qualityMark = " " + styles.BadMark.Render("✗")
		}

		row := fmt.Sprintf(" %-6s %s %s%s", timeStr, sideStyle.Render(sideMark), item.Label, qualityMark)
		if i == state.SelectedIndex {
			row = styles.Highlight.Render(truncate(row, width))
		} else {
			row = styles.PrimaryText.Render(truncate(row, width))
		}
		lines = append(lines, row)
	}

	return strings.Join(lines, "\n")
}

// truncate cuts s to at most width display cells. ANSI-free input only.
func truncate(s string, width int) string {
	if width <= 3 || len(s) <= width {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}
