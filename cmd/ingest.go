package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hoopsight/cbbmetrics/internal/feed"
	"github.com/hoopsight/cbbmetrics/internal/pipeline"
)

// ingest command flags.
var (
	ingestYear int
	// ingestRecompute also rebuilds the season aggregates after the feeds land.
	ingestRecompute bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Download and store a season's feeds",
	Long: `Downloads the per-game advanced log, the season ratings CSV, and the
team results table for one season and stores them. Re-running replaces
stored rows in place.

Examples:
  cbbmetrics ingest --year 2026
  cbbmetrics ingest --year 2026 --recompute`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().IntVar(&ingestYear, "year", 0, "season year, e.g. 2026 (required)")
	ingestCmd.Flags().BoolVar(&ingestRecompute, "recompute", false, "rebuild season aggregates after ingesting")
	_ = ingestCmd.MarkFlagRequired("year")
}

func runIngest(cmd *cobra.Command, args []string) error {
	db, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	fc := feed.NewClient(cfg.Feeds.BaseURL)
	if err := pipeline.Ingest(cmd.Context(), db, fc, ingestYear); err != nil {
		return err
	}

	if ingestRecompute {
		n, err := pipeline.RecomputeSeason(cmd.Context(), db, ingestYear)
		if err != nil {
			return err
		}
		fmt.Printf("Recomputed aggregates for %d player-seasons\n", n)
	}
	return nil
}
