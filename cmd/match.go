package cmd

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/user/tagging-football-cli/clock"
	"github.com/user/tagging-football-cli/db"
	"github.com/user/tagging-football-cli/event"
	"github.com/user/tagging-football-cli/match"
	"github.com/user/tagging-football-cli/pkg/export"
	"github.com/user/tagging-football-cli/roster"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Manage saved matches",
	Long:  `List, show, delete, and export saved match records.`,
}

var matchListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDatabase()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		records, err := db.ListMatchRecords(database)
		if err != nil {
			return fmt.Errorf("failed to list matches: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No saved matches yet. Record one with 'record'.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDate\tMatch\tScore\tEvents")
		fmt.Fprintln(w, "--\t----\t-----\t-----\t------")

		for _, rec := range records {
			fmt.Fprintf(w, "%s\t%s\t%s vs %s\t%d - %d\t%d\n",
				shortID(rec.ID),
				rec.Date.Format(time.DateOnly),
				rec.HomeTeam, rec.AwayTeam,
				rec.Score.Home, rec.Score.Away,
				len(rec.Events),
			)
		}
		w.Flush()

		fmt.Printf("\nTotal: %d match(es)\n", len(records))
		return nil
	},
}

var matchShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one match's event log",
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

		var dir roster.Directory
		if rec.Snapshot != nil {
			all := append(append([]roster.Player{}, rec.Snapshot.HomePlayers...), rec.Snapshot.AwayPlayers...)
			dir = roster.NewMapDirectory(all)
		}

		fmt.Printf("%s %d - %d %s\n", rec.HomeTeam, rec.Score.Home, rec.Score.Away, rec.AwayTeam)
		fmt.Printf("Date: %s\n\n", rec.Date.Format(time.DateOnly))

		if len(rec.Events) == 0 {
			fmt.Println("No events recorded.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Time\tSide\tEvent")
		fmt.Fprintln(w, "----\t----\t-----")

		for _, ev := range rec.Events {
			side := "H"
			if ev.Side() == event.TeamAway {
				side = "A"
			}
			elapsed := time.Duration(ev.EventTime()) * time.Millisecond
			fmt.Fprintf(w, "%s\t%s\t%s\n", clock.FormatPlain(elapsed), side, match.FormatEvent(ev, dir))
		}
		w.Flush()
		return nil
	},
}

var matchDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved match",
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

		if err := db.DeleteMatchRecord(database, rec.ID); err != nil {
			return fmt.Errorf("failed to delete match: %w", err)
		}

		fmt.Printf("Deleted: %s vs %s (%s)\n", rec.HomeTeam, rec.AwayTeam, rec.Date.Format(time.DateOnly))
		return nil
	},
}

var matchExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a match report to a text file",
	Long:  `Export a saved match to a plain-text report with the final score, team tallies, per-player counters, notes, and the full event log.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir, _ := cmd.Flags().GetString("out")

		database, err := openDatabase()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		rec, err := findMatch(database, args[0])
		if err != nil {
			return err
		}

		path := export.BuildReportPath(outDir, rec)
		if err := export.WriteReport(path, rec); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		fmt.Printf("Report written: %s\n", path)
		return nil
	},
}

// findMatch looks a record up by full id, falling back to a unique short-id
// prefix match over the saved list.
func findMatch(database *sql.DB, id string) (match.Record, error) {
	rec, err := db.GetMatchRecord(database, id)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return match.Record{}, fmt.Errorf("failed to load match: %w", err)
	}

	records, err := db.ListMatchRecords(database)
	if err != nil {
		return match.Record{}, fmt.Errorf("failed to load match: %w", err)
	}

	var found []match.Record
	for _, r := range records {
		if len(id) >= 4 && len(r.ID) >= len(id) && r.ID[:len(id)] == id {
			found = append(found, r)
		}
	}
	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return match.Record{}, fmt.Errorf("match not found: %s", id)
	default:
		return match.Record{}, fmt.Errorf("ambiguous match id %s (%d candidates)", id, len(found))
	}
}

// shortID abbreviates a record id for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	matchExportCmd.Flags().String("out", "reports", "output directory for the report")

	matchCmd.AddCommand(matchListCmd)
	matchCmd.AddCommand(matchShowCmd)
	matchCmd.AddCommand(matchDeleteCmd)
	matchCmd.AddCommand(matchExportCmd)
	rootCmd.AddCommand(matchCmd)
}
