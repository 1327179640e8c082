package cmd

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/user/tagging-football-cli/db"
	"github.com/user/tagging-football-cli/match"
	"github.com/user/tagging-football-cli/mirror"
	"github.com/user/tagging-football-cli/projection"
	"github.com/user/tagging-football-cli/roster"
	"github.com/user/tagging-football-cli/tui"
	"github.com/user/tagging-football-cli/tui/forms"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a match live",
	Long: `Start a live recording session for a match between two saved teams.

If an autosaved draft from an interrupted session exists, you are offered
to resume it; otherwise pick the starting lineups and begin. All edits
during the session are autosaved to the draft slot.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		homeName, _ := cmd.Flags().GetString("home")
		awayName, _ := cmd.Flags().GetString("away")
		homeFormation, _ := cmd.Flags().GetString("home-formation")
		awayFormation, _ := cmd.Flags().GetString("away-formation")

		database, err := openDatabase()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		store := db.NewStore(database)

		var remote match.Mirror
		if url := resolveMirrorURL(); url != "" {
			remote = mirror.NewClient(url)
		}

		// Offer to resume an interrupted session before starting fresh.
		if draft, err := store.ReadDraft(); err != nil {
			return fmt.Errorf("failed to read draft: %w", err)
		} else if draft != nil {
			resume := true
			description := fmt.Sprintf("%s vs %s, autosaved %s",
				draft.Snapshot.HomeTeam.Name,
				draft.Snapshot.AwayTeam.Name,
				draft.SavedAt.Format("2006-01-02 15:04"),
			)
			if err := forms.NewResumeDraftForm(description, &resume).Run(); err != nil {
				return err
			}
			if resume {
				return tui.Run(match.Resume(*draft, store, store, remote))
			}
			if err := store.ClearDraft(); err != nil {
				return fmt.Errorf("failed to discard draft: %w", err)
			}
		}

		if homeName == "" || awayName == "" {
			return fmt.Errorf("both --home and --away team names are required")
		}

		home, homePlayers, err := loadSquad(database, homeName)
		if err != nil {
			return err
		}
		away, awayPlayers, err := loadSquad(database, awayName)
		if err != nil {
			return err
		}

		homeLineup, err := pickLineup(home, homePlayers)
		if err != nil {
			return err
		}
		awayLineup, err := pickLineup(away, awayPlayers)
		if err != nil {
			return err
		}

		session := match.NewSession(match.Config{
			HomeTeam:      home,
			AwayTeam:      away,
			HomePlayers:   homePlayers,
			AwayPlayers:   awayPlayers,
			HomeLineup:    homeLineup,
			AwayLineup:    awayLineup,
			HomeFormation: homeFormation,
			AwayFormation: awayFormation,
			Records:       store,
			Drafts:        store,
			Mirror:        remote,
		})

		return tui.Run(session)
	},
}

// loadSquad resolves a team by name and loads its roster.
func loadSquad(database *sql.DB, name string) (roster.Team, []roster.Player, error) {
	team, err := db.GetTeamByName(database, name)
	if err != nil {
		return roster.Team{}, nil, fmt.Errorf("team %q not found", name)
	}
	players, err := db.ListPlayersByTeam(database, team.ID)
	if err != nil {
		return roster.Team{}, nil, fmt.Errorf("failed to load %s roster: %w", team.Name, err)
	}
	return team, players, nil
}

// pickLineup prompts for a side's starting players and assigns them to
// formation slots in display order.
func pickLineup(team roster.Team, players []roster.Player) (projection.Lineup, error) {
	if len(players) == 0 {
		return nil, fmt.Errorf("team %s has no players; add some with 'player add'", team.Name)
	}

	var selected []string
	if err := forms.NewLineupForm(team.Name, players, &selected).Run(); err != nil {
		return nil, err
	}

	picked := map[string]bool{}
	for _, id := range selected {
		picked[id] = true
	}

	lineup := projection.Lineup{}
	slot := 0
	for _, p := range roster.SortPlayersForDisplay(players) {
		if picked[p.ID] {
			lineup[slot] = p.ID
			slot++
		}
	}
	return lineup, nil
}

func init() {
	recordCmd.Flags().String("home", "", "home team name")
	recordCmd.Flags().String("away", "", "away team name")
	recordCmd.Flags().String("home-formation", "4-4-2", "home starting formation")
	recordCmd.Flags().String("away-formation", "4-4-2", "away starting formation")

	rootCmd.AddCommand(recordCmd)
}
