package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/user/tagging-football-cli/formation"
	"github.com/user/tagging-football-cli/projection"
	"github.com/user/tagging-football-cli/roster"
	"github.com/user/tagging-football-cli/tui/styles"
)

// Pitch renders one side's lineup grouped into formation lines, attackers
// first. Empty slots show the role label in dim text.
func Pitch(tmpl formation.Template, lineup projection.Lineup, dir roster.Directory, width int) string {
	var lines []string
	lines = append(lines, styles.Header.Render(fmt.Sprintf(" %s", tmpl.Name)))

	// Group slots by their vertical band, attackers (small Y) first.
	byBand := map[int][]formation.Slot{}
	var bands []int
	for _, slot := range tmpl.Slots {
		if _, seen := byBand[slot.Y]; !seen {
			bands = append(bands, slot.Y)
		}
		byBand[slot.Y] = append(byBand[slot.Y], slot)
	}
	sort.Ints(bands)

	for _, band := range bands {
		slots := byBand[band]
		// Left-to-right within the line.
		sort.Slice(slots, func(i, j int) bool { return slots[i].X < slots[j].X })

		var cells []string
		for _, slot := range slots {
			cells = append(cells, renderSlot(slot, lineup, dir))
		}
		row := " " + strings.Join(cells, "  ")
		lines = append(lines, truncate(row, width))
	}

	return strings.Join(lines, "\n")
}

func renderSlot(slot formation.Slot, lineup projection.Lineup, dir roster.Directory) string {
	id, ok := lineup[slot.ID]
	if !ok || id == "" {
		return styles.SecondaryText.Render("[" + slot.Label + "]")
	}
	if dir != nil {
		if p, found := dir.PlayerByID(id); found {
			return styles.PrimaryText.Render(fmt.Sprintf("%s #%d %s", slot.Label, p.JerseyNumber, shortName(p.Name)))
		}
	}
	return styles.PrimaryText.Render(slot.Label + " ?")
}

// shortName keeps pitch rows compact: first 8 runes of the name.
func shortName(name string) string {
	runes := []rune(name)
	if len(runes) <= 8 {
		return name
	}
	return string(runes[:8])
}

// BenchList renders the bench in display order.
func BenchList(bench []roster.Player, width int) string {
	var lines []string
	lines = append(lines, styles.Header.Render(" Bench"))
	if len(bench) == 0 {
		lines = append(lines, styles.SecondaryText.Render(" (empty)"))
		return strings.Join(lines, "\n")
	}
	for _, p := range bench {
		row := fmt.Sprintf(" #%d %s", p.JerseyNumber, p.Name)
		lines = append(lines, styles.SecondaryText.Render(truncate(row, width)))
	}
	return strings.Join(lines, "\n")
}
