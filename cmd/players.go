package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hoopsight/cbbmetrics/internal/report"
)

var (
	playersTeam string
	playersYear int
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "Print a team's season averages, one player per row",
	Long: `Prints the stored season averages for every player on a team, ordered
by points per game. Run "season" (or "ingest --recompute") first to
populate the aggregates.

Example:
  cbbmetrics players --team Duke --year 2026`,
	RunE: runPlayers,
}

func init() {
	playersCmd.Flags().StringVar(&playersTeam, "team", "", "team name as it appears in the feed (required)")
	playersCmd.Flags().IntVar(&playersYear, "year", 0, "season year (required)")
	_ = playersCmd.MarkFlagRequired("team")
	_ = playersCmd.MarkFlagRequired("year")
}

func runPlayers(cmd *cobra.Command, args []string) error {
	db, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	players, err := db.Players(cmd.Context(), playersTeam, playersYear)
	if err != nil {
		return fmt.Errorf("list players: %w", err)
	}
	if len(players) == 0 {
		fmt.Fprintf(os.Stderr, "No season averages for %s %d; run \"season --year %d\" first\n",
			playersTeam, playersYear, playersYear)
		return nil
	}

	report.PrintSeasonTable(os.Stdout, players)
	return nil
}
