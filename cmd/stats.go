package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/user/tagging-football-cli/match"
	"github.com/user/tagging-football-cli/projection"
	"github.com/user/tagging-football-cli/roster"
)

var statsCmd = &cobra.Command{
	Use:   "stats <id>",
	Short: "Show a saved match's stamp statistics",
	Long:  `Display the good/bad stamp tally per side and per-player counters for a saved match.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDatabase()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		rec, err := findMatch(database, args[0])
		if err != nil {
			return err
		}

		return writeStats(os.Stdout, rec)
	},
}

// writeStats renders the team tally and per-player counters for one record.
func writeStats(out io.Writer, rec match.Record) error {
	fmt.Fprintf(out, "%s %d - %d %s (%s)\n\n", rec.HomeTeam, rec.Score.Home, rec.Score.Away, rec.AwayTeam, rec.Date.Format(time.DateOnly))

	stats := projection.ComputeTeamStats(rec.Events)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Team\tGood\tBad")
	fmt.Fprintln(w, "----\t----\t---")
	fmt.Fprintf(w, "%s\t%d\t%d\n", rec.HomeTeam, stats.Home.Good, stats.Home.Bad)
	fmt.Fprintf(w, "%s\t%d\t%d\n", rec.AwayTeam, stats.Away.Good, stats.Away.Bad)
	w.Flush()

	summary := rec.PlayerSummary
	if len(summary) == 0 {
		summary = projection.ComputePlayerSummary(rec.Events, snapshotNameResolver(rec.Snapshot))
	}
	if len(summary) == 0 {
		fmt.Fprintln(out, "\nNo player-attributed events.")
		return nil
	}

	type row struct {
		name  string
		stats projection.PlayerStats
	}
	rows := make([]row, 0, len(summary))
	for id, ps := range summary {
		name := ps.Name
		if name == "" {
			name = id
		}
		rows = append(rows, row{name: name, stats: ps})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].name < rows[j].name })

	fmt.Fprintln(out)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Player\tCounts")
	fmt.Fprintln(w, "------\t------")
	for _, r := range rows {
		keys := make([]string, 0, len(r.stats.Counts))
		for k := range r.stats.Counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		line := ""
		for i, k := range keys {
			if i > 0 {
				line += ", "
			}
			line += fmt.Sprintf("%s %d", k, r.stats.Counts[k])
		}
		fmt.Fprintf(w, "%s\t%s\n", r.name, line)
	}
	w.Flush()
	return nil
}

// snapshotNameResolver resolves player names from a record's snapshot rosters.
func snapshotNameResolver(snap *match.Snapshot) projection.NameResolver {
	if snap == nil {
		return nil
	}
	all := append(append([]roster.Player{}, snap.HomePlayers...), snap.AwayPlayers...)
	dir := roster.NewMapDirectory(all)
	return func(playerID string) string {
		if p, ok := dir.PlayerByID(playerID); ok {
			return p.Name
		}
		return ""
	}
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
