// Package export writes saved match records to plain-text report files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/user/tagging-football-cli/clock"
	"github.com/user/tagging-football-cli/event"
	"github.com/user/tagging-football-cli/match"
	"github.com/user/tagging-football-cli/projection"
	"github.com/user/tagging-football-cli/roster"
)

// unsafeChars matches characters not safe for filenames: / \ : * ? < > | and spaces
var unsafeChars = regexp.MustCompile(`[/\\:*?<>|\s]`)

// sanitize replaces unsafe filename characters with underscores.
func sanitize(s string) string {
	return unsafeChars.ReplaceAllString(s, "_")
}

// BuildReportPath returns the output path for a match report.
// Format: {dir}/{yyyy-mm-dd}-{home}-vs-{away}.txt
func BuildReportPath(dir string, rec match.Record) string {
	filename := fmt.Sprintf("%s-%s-vs-%s.txt",
		rec.Date.Format("2006-01-02"),
		sanitize(rec.HomeTeam),
		sanitize(rec.AwayTeam),
	)
	return filepath.Join(dir, filename)
}

// WriteReport creates the output directory and writes the match report file.
func WriteReport(path string, rec match.Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	var dir roster.Directory
	if rec.Snapshot != nil {
		all := append(append([]roster.Player{}, rec.Snapshot.HomePlayers...), rec.Snapshot.AwayPlayers...)
		dir = roster.NewMapDirectory(all)
	}

	title := fmt.Sprintf("%s %d - %d %s", rec.HomeTeam, rec.Score.Home, rec.Score.Away, rec.AwayTeam)
	fmt.Fprintf(file, "%s\n", title)
	fmt.Fprintf(file, "%s\n\n", strings.Repeat("=", len(title)))
	fmt.Fprintf(file, "Date: %s\n\n", rec.Date.Format(time.DateOnly))

	stats := projection.ComputeTeamStats(rec.Events)
	fmt.Fprintf(file, "Summary\n")
	fmt.Fprintf(file, "-------\n")
	fmt.Fprintf(file, "%s: %d good / %d bad\n", rec.HomeTeam, stats.Home.Good, stats.Home.Bad)
	fmt.Fprintf(file, "%s: %d good / %d bad\n\n", rec.AwayTeam, stats.Away.Good, stats.Away.Bad)

	writeNotes(file, rec.Notes)
	writePlayerSummary(file, rec.PlayerSummary)

	fmt.Fprintf(file, "Events\n")
	fmt.Fprintf(file, "------\n")
	if len(rec.Events) == 0 {
		fmt.Fprintf(file, "(none)\n")
	}
	for _, ev := range rec.Events {
		elapsed := time.Duration(ev.EventTime()) * time.Millisecond
		side := "H"
		if ev.Side() == event.TeamAway {
			side = "A"
		}
		line := fmt.Sprintf("%-7s [%s] %s", clock.FormatPlain(elapsed), side, match.FormatEvent(ev, dir))
		if q := eventQuality(ev); q == event.QualityBad {
			line += " (bad)"
		}
		fmt.Fprintf(file, "%s\n", line)
	}

	return nil
}

func writeNotes(file *os.File, notes match.Notes) {
	sections := []struct {
		label, text string
	}{
		{"First half", notes.FirstHalf},
		{"Second half", notes.SecondHalf},
		{"Full match", notes.FullMatch},
	}

	any := false
	for _, s := range sections {
		if s.text != "" {
			any = true
		}
	}
	if !any {
		return
	}

	fmt.Fprintf(file, "Notes\n")
	fmt.Fprintf(file, "-----\n")
	for _, s := range sections {
		if s.text == "" {
			continue
		}
		fmt.Fprintf(file, "%s: %s\n", s.label, s.text)
	}
	fmt.Fprintf(file, "\n")
}

func writePlayerSummary(file *os.File, summary projection.PlayerSummary) {
	if len(summary) == 0 {
		return
	}

	type row struct {
		name  string
		stats projection.PlayerStats
	}
	rows := make([]row, 0, len(summary))
	for id, stats := range summary {
		name := stats.Name
		if name == "" {
			name = id
		}
		rows = append(rows, row{name: name, stats: stats})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].name < rows[j].name })

	fmt.Fprintf(file, "Players\n")
	fmt.Fprintf(file, "-------\n")
	for _, r := range rows {
		keys := make([]string, 0, len(r.stats.Counts))
		for k := range r.stats.Counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s %d", k, r.stats.Counts[k]))
		}
		fmt.Fprintf(file, "%s: %s\n", r.name, strings.Join(parts, ", "))
	}
	fmt.Fprintf(file, "\n")
}

// eventQuality extracts the quality of a stamp event, empty otherwise.
func eventQuality(ev event.MatchEvent) event.Quality {
	switch e := ev.(type) {
	case *event.PlayerEvent:
		if e.Type != event.TypeGoal {
			return e.Quality
		}
	case *event.TeamEvent:
		return e.Quality
	}
	return ""
}
