package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/tagging-football-cli/projection"
	"github.com/user/tagging-football-cli/tui/styles"
)

// maxLeaderboardRows caps the per-player leaderboard in the side panel.
const maxLeaderboardRows = 8

// StatsPanel renders the live stat summary: per-side good/bad tallies and the
// busiest players.
func StatsPanel(stats projection.TeamStats, summary projection.PlayerSummary, homeName, awayName string, width int) string {
	var lines []string

	lines = append(lines, styles.Header.Render(" Stamps"))
	lines = append(lines, renderTally(homeName, stats.Home, styles.HomeAccent, width))
	lines = append(lines, renderTally(awayName, stats.Away, styles.AwayAccent, width))
	lines = append(lines, "")

	lines = append(lines, styles.Header.Render(" Players"))
	rows := leaderboard(summary)
	if len(rows) == 0 {
		lines = append(lines, styles.SecondaryText.Render(" No player events yet"))
	}
	for i, row := range rows {
		if i >= maxLeaderboardRows {
			break
		}
		lines = append(lines, styles.PrimaryText.Render(truncate(row, width)))
	}

	return strings.Join(lines, "\n")
}

func renderTally(name string, counts projection.TeamStampCounts, accent lipgloss.Style, width int) string {
	row := fmt.Sprintf(" %s: %s %s",
		accent.Render(name),
		styles.GoodMark.Render(fmt.Sprintf("%d good", counts.Good)),
		styles.BadMark.Render(fmt.Sprintf("%d bad", counts.Bad)),
	)
	return truncate(row, width)
}

type leaderRow struct {
	name  string
	total int
	goals int
}

// leaderboard flattens the summary into display rows sorted by event count,
// then name for a stable order.
func leaderboard(summary projection.PlayerSummary) []string {
	var rows []leaderRow
	for id, stats := range summary {
		total := 0
		for _, n := range stats.Counts {
			total += n
		}
		name := stats.Name
		if name == "" {
			name = id
		}
		rows = append(rows, leaderRow{name: name, total: total, goals: stats.Counts["goal"]})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].total != rows[j].total {
			return rows[i].total > rows[j].total
		}
		return rows[i].name < rows[j].name
	})

	out := make([]string, 0, len(rows))
	for _, r := range rows {
		line := fmt.Sprintf(" %-12s %3d", truncate(r.name, 12), r.total)
		if r.goals > 0 {
			line += fmt.Sprintf("  ⚽ %d", r.goals)
		}
		out = append(out, line)
	}
	return out
}
