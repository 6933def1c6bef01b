package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dropYear  int
	dropForce bool
)

// dropCmd removes one season's rows from every table.
var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Delete a season from storage",
	Long:  "Permanently delete one season's game records, ratings, and aggregates. Re-ingest the season afterwards to rebuild.",
	Args:  cobra.NoArgs,
	RunE:  runDrop,
}

func init() {
	dropCmd.Flags().IntVar(&dropYear, "year", 0, "season year to delete (required)")
	dropCmd.Flags().BoolVarP(&dropForce, "force", "f", false, "skip confirmation prompt")
	_ = dropCmd.MarkFlagRequired("year")
}

func runDrop(cmd *cobra.Command, args []string) error {
	if !dropForce {
		fmt.Fprintf(os.Stderr, "This will permanently delete all stored data for %d.\n", dropYear)
		fmt.Fprintf(os.Stderr, "Re-run with --force to confirm.\n")
		return nil
	}

	db, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.DeleteYear(cmd.Context(), dropYear); err != nil {
		return fmt.Errorf("delete season: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Deleted season %d\n", dropYear)
	return nil
}
