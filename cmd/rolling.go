package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hoopsight/cbbmetrics/internal/aggregator"
	"github.com/hoopsight/cbbmetrics/internal/pipeline"
	"github.com/hoopsight/cbbmetrics/internal/report"
)

// rolling command flags.
var (
	rollingPID  int
	rollingYear int
	rollingTeam string
	// rollingLast selects the player's most recent N qualifying games.
	rollingLast int
	// rollingStart and rollingEnd bound an inclusive YYYYMMDD date window.
	rollingStart string
	rollingEnd   string
	rollingNoPct bool
	// rollingGames also prints the window's game log.
	rollingGames bool
)

var rollingCmd = &cobra.Command{
	Use:   "rolling",
	Short: "Windowed averages for one player",
	Long: `Computes averages for one player over a window of games: the last N
games, an inclusive date range, or the whole season. Shooting rates are
recomputed from window totals rather than averaged per game. Each value
is ranked against the stored full-season population unless --no-pct.

Examples:
  cbbmetrics rolling --pid 71233 --year 2026 --team Duke --last 5
  cbbmetrics rolling --pid 71233 --year 2026 --team Duke --start 20260101 --end 20260131`,
	RunE: runRolling,
}

func init() {
	rollingCmd.Flags().IntVar(&rollingPID, "pid", 0, "player ID (required)")
	rollingCmd.Flags().IntVar(&rollingYear, "year", 0, "season year (required)")
	rollingCmd.Flags().StringVar(&rollingTeam, "team", "", "team name (required)")
	rollingCmd.Flags().IntVar(&rollingLast, "last", 0, "window: most recent N games")
	rollingCmd.Flags().StringVar(&rollingStart, "start", "", "window start date, YYYYMMDD inclusive")
	rollingCmd.Flags().StringVar(&rollingEnd, "end", "", "window end date, YYYYMMDD inclusive")
	rollingCmd.Flags().BoolVar(&rollingNoPct, "no-pct", false, "skip percentile ranks")
	rollingCmd.Flags().BoolVar(&rollingGames, "games", false, "also print the window's game log")
	_ = rollingCmd.MarkFlagRequired("pid")
	_ = rollingCmd.MarkFlagRequired("year")
	_ = rollingCmd.MarkFlagRequired("team")
}

func runRolling(cmd *cobra.Command, args []string) error {
	db, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	opts := pipeline.RollingOptions{
		LastN:       rollingLast,
		Start:       rollingStart,
		End:         rollingEnd,
		Percentiles: !rollingNoPct,
	}
	r, err := pipeline.Rolling(cmd.Context(), db, rollingPID, rollingYear, rollingTeam, opts)
	if errors.Is(err, aggregator.ErrNoGames) {
		return fmt.Errorf("no qualifying games for pid %d (%s %d) in the selected window",
			rollingPID, rollingTeam, rollingYear)
	}
	if err != nil {
		return err
	}

	report.PrintRollingReport(os.Stdout, r)

	if rollingGames {
		games, err := db.PlayerGameRecords(cmd.Context(), rollingPID, rollingYear, rollingTeam)
		if err != nil {
			return fmt.Errorf("load game log: %w", err)
		}
		fmt.Fprintln(os.Stdout)
		report.PrintGameLog(os.Stdout, games)
	}
	return nil
}
