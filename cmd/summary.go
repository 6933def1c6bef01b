package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hoopsight/cbbmetrics/internal/report"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show row counts and stored seasons",
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	db, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	o, err := db.Overview(cmd.Context())
	if err != nil {
		return fmt.Errorf("load overview: %w", err)
	}
	report.PrintOverview(os.Stdout, o)
	return nil
}
