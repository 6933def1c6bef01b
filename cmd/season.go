package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hoopsight/cbbmetrics/internal/pipeline"
)

var seasonYear int

var seasonCmd = &cobra.Command{
	Use:   "season",
	Short: "Rebuild season averages and percentiles from the stored game log",
	RunE:  runSeason,
}

func init() {
	seasonCmd.Flags().IntVar(&seasonYear, "year", 0, "season year (required)")
	_ = seasonCmd.MarkFlagRequired("year")
}

func runSeason(cmd *cobra.Command, args []string) error {
	db, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := pipeline.RecomputeSeason(cmd.Context(), db, seasonYear)
	if err != nil {
		return err
	}
	fmt.Printf("Computed aggregates for %d player-seasons (%d)\n", n, seasonYear)
	return nil
}
