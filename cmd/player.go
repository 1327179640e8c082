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

var playerCmd = &cobra.Command{
	Use:   "player",
	Short: "Manage players",
	Long:  `Add and list players on a team's roster.`,
}

var playerAddCmd = &cobra.Command{
	Use:   "add <team> <name>",
	Short: "Add a player to a team",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		teamName := args[0]
		name := args[1]
		jersey, _ := cmd.Flags().GetInt("number")
		position, _ := cmd.Flags().GetString("position")

		if jersey <= 0 {
			return fmt.Errorf("a positive jersey number is required (--number)")
		}

		database, err := openDatabase()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		team, err := db.GetTeamByName(database, teamName)
		if err != nil {
			return fmt.Errorf("team %q not found", teamName)
		}

		player := roster.Player{
			ID:           event.NewID(),
			TeamID:       team.ID,
			Name:         name,
			JerseyNumber: jersey,
			Position:     position,
		}
		if err := db.InsertPlayer(database, player); err != nil {
			if errors.Is(err, db.ErrDuplicateJersey) {
				return fmt.Errorf("jersey number %d is already taken on %s", jersey, team.Name)
			}
			return fmt.Errorf("failed to add player: %w", err)
		}

		fmt.Printf("Player added: #%d %s (%s)\n", jersey, name, team.Name)
		return nil
	},
}

var playerListCmd = &cobra.Command{
	Use:   "list <team>",
	Short: "List a team's roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		teamName := args[0]

		database, err := openDatabase()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		team, err := db.GetTeamByName(database, teamName)
		if err != nil {
			return fmt.Errorf("team %q not found", teamName)
		}

		players, err := db.ListPlayersByTeam(database, team.ID)
		if err != nil {
			return fmt.Errorf("failed to list players: %w", err)
		}

		if len(players) == 0 {
			fmt.Printf("No players on %s yet. Add one with 'player add %s <name> --number N'.\n", team.Name, team.Name)
			return nil
		}

		players = roster.SortPlayersForDisplay(players)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "No\tName\tPosition")
		fmt.Fprintln(w, "--\t----\t--------")

		for _, p := range players {
			position := p.Position
			if position == "" {
				position = "-"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\n", p.JerseyNumber, p.Name, position)
		}
		w.Flush()

		fmt.Printf("\nTotal: %d player(s)\n", len(players))
		return nil
	},
}

func init() {
	playerAddCmd.Flags().Int("number", 0, "jersey number (required)")
	playerAddCmd.Flags().String("position", "", "position: GK, DF, MF, or FW")

	playerCmd.AddCommand(playerAddCmd)
	playerCmd.AddCommand(playerListCmd)
	rootCmd.AddCommand(playerCmd)
}
