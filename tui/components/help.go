package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/tagging-football-cli/tui/styles"
)

// helpEntries lists every key binding shown on the help overlay.
var helpEntries = []struct {
	key, desc string
}{
	{"Space", "Start / pause clock"},
	{"p", "Next phase (1H → HT → 2H → FT)"},
	{"tab", "Switch active side"},
	{"s", "Record player stamp"},
	{"g", "Record goal"},
	{"t", "Record team stamp"},
	{"u", "Substitution"},
	{"f", "Change formation"},
	{"a", "Assign player to empty slot"},
	{"n", "Edit match notes"},
	{"j / k", "Select event down / up"},
	{"e", "Edit selected event"},
	{"x", "Delete selected event"},
	{"r", "Reset clock"},
	{"S", "Save match and quit"},
	{"q", "Quit (draft is kept)"},
	{"?", "Toggle this help"},
}

// HelpOverlay renders the full-screen key binding reference. Any key
// dismisses it.
func HelpOverlay(width, height int) string {
	keyStyle := lipgloss.NewStyle().Foreground(styles.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(styles.LightLavender)

	var lines []string
	lines = append(lines, styles.Header.Render("Key Bindings"))
	lines = append(lines, "")
	for _, e := range helpEntries {
		lines = append(lines, keyStyle.Render(padRight(e.key, 8))+descStyle.Render(e.desc))
	}
	lines = append(lines, "")
	lines = append(lines, styles.SecondaryText.Render("Press any key to close"))

	content := strings.Join(lines, "\n")
	box := styles.Border.Padding(1, 3).Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}
