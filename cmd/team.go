package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/user/tagging-football-cli/db"
	"github.com/user/tagging-football-cli/event"
	"github.com/user/tagging-football-cli/roster"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage teams",
	Long:  `Add and list teams in the local directory.`,
}

var teamAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		color, _ := cmd.Flags().GetString("color")

		database, err := openDatabase()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		team := roster.Team{
			ID:    event.NewID(),
			Name:  name,
			Color: color,
		}
		if err := db.InsertTeam(database, team); err != nil {
			if errors.Is(err, db.ErrTeamExists) {
				return fmt.Errorf("team %q already exists", name)
			}
			return fmt.Errorf("failed to add team: %w", err)
		}

		fmt.Printf("Team added: %s\n", name)
		return nil
	},
}

var teamListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all teams",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDatabase()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		teams, err := db.ListTeams(database)
		if err != nil {
			return fmt.Errorf("failed to list teams: %w", err)
		}

		if len(teams) == 0 {
			fmt.Println("No teams yet. Add one with 'team add <name>'.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Name\tColor\tPlayers")
		fmt.Fprintln(w, "----\t-----\t-------")

		for _, t := range teams {
			players, err := db.ListPlayersByTeam(database, t.ID)
			if err != nil {
				return fmt.Errorf("failed to count players: %w", err)
			}
			color := t.Color
			if color == "" {
				color = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%d\n", t.Name, color, len(players))
		}
		w.Flush()

		fmt.Printf("\nTotal: %d team(s)\n", len(teams))
		return nil
	},
}

func init() {
	teamAddCmd.Flags().String("color", "", "display color for the team")

	teamCmd.AddCommand(teamAddCmd)
	teamCmd.AddCommand(teamListCmd)
	rootCmd.AddCommand(teamCmd)
}
