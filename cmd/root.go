package cmd

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/user/tagging-football-cli/db"
	"github.com/user/tagging-football-cli/log"
)

var Version = "0.1.0"

// mirrorURLEnv overrides the mirror URL flag when set.
const mirrorURLEnv = "MATCH_MIRROR_URL"

var (
	flagDBPath    string
	flagMirrorURL string
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "tagging-football-cli",
	Short: "A CLI tool for live football match tagging",
	Long: `tagging-football-cli is a CLI tool for football coaches and analysts
to record match events live from the touchline, stored in SQLite.

Features:
  - Record stamps, goals, substitutions, and formation changes with a match clock
  - Live pitch view, event log, and per-player summaries
  - Edit or delete events; lineups and score are re-derived from the log
  - Autosaved draft for crash recovery, optional remote mirror on save`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tagging-football-cli version %s\n", Version)
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the local database and mirror configuration",
	Long:  `Check that the SQLite database can be opened and migrated, and that the remote mirror (if configured) is reachable.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Checking setup...")
		fmt.Println()

		allGood := true

		// Check database
		database, err := openDatabase()
		if err != nil {
			fmt.Printf("✗ database: %v\n", err)
			allGood = false
		} else {
			fmt.Println("✓ database: OK")
			database.Close()
		}

		// Check mirror
		mirrorURL := resolveMirrorURL()
		if mirrorURL == "" {
			fmt.Println("- mirror: not configured (saves stay local)")
		} else {
			client := &http.Client{Timeout: 5 * time.Second}
			resp, err := client.Get(mirrorURL)
			if err != nil {
				fmt.Printf("✗ mirror: %s unreachable: %v\n", mirrorURL, err)
				allGood = false
			} else {
				resp.Body.Close()
				fmt.Printf("✓ mirror: %s reachable\n", mirrorURL)
			}
		}

		fmt.Println()
		if allGood {
			fmt.Println("Everything looks good!")
		} else {
			fmt.Println("Some checks failed. Fix them to use all features.")
			os.Exit(1)
		}
	},
}

// openDatabase opens the database at the --db path, or the default location
// when the flag is empty.
func openDatabase() (*sql.DB, error) {
	if flagDBPath != "" {
		return db.OpenAt(flagDBPath)
	}
	return db.Open()
}

// resolveMirrorURL returns the mirror base URL, environment winning over
// the flag. Empty means mirroring is disabled.
func resolveMirrorURL() string {
	if env := os.Getenv(mirrorURLEnv); env != "" {
		return env
	}
	return flagMirrorURL
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "path to the SQLite database (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&flagMirrorURL, "mirror-url", "", "base URL of the remote mirror (or set "+mirrorURLEnv+")")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return log.Init(flagVerbose)
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(doctorCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
