package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hoopsight/cbbmetrics/internal/report"
)

var teamsYear int

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "Print a season's team ratings in rank order",
	RunE:  runTeams,
}

func init() {
	teamsCmd.Flags().IntVar(&teamsYear, "year", 0, "season year (required)")
	_ = teamsCmd.MarkFlagRequired("year")
}

func runTeams(cmd *cobra.Command, args []string) error {
	db, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	teams, err := db.TeamRatings(cmd.Context(), teamsYear)
	if err != nil {
		return fmt.Errorf("list teams: %w", err)
	}
	if len(teams) == 0 {
		fmt.Fprintf(os.Stderr, "No team ratings stored for %d\n", teamsYear)
		return nil
	}

	report.PrintTeamTable(os.Stdout, teams)
	return nil
}
