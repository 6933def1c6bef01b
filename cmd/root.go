package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hoopsight/cbbmetrics/internal/config"
	"github.com/hoopsight/cbbmetrics/internal/logger"
	"github.com/hoopsight/cbbmetrics/internal/storage"
)

var (
	cfgPath string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "cbbmetrics",
	Short: "College basketball statistics tool",
	Long: `Ingest per-game logs, season ratings, and team results for a college
basketball season, compute season and rolling aggregates, and serve them
as console reports or over HTTP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = c
		logger.Init(cfg.Logging.Level, cfg.Logging.Format)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (YAML, optional)")

	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(seasonCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(rollingCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(dropCmd)
}

// openStore opens the configured storage backend.
func openStore(cmd *cobra.Command) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "clickhouse":
		ch := cfg.Storage.CH
		db, err := storage.OpenClickHouse(cmd.Context(), ch.Addr, ch.Database, ch.Username, ch.Password)
		if err != nil {
			return nil, fmt.Errorf("open clickhouse: %w", err)
		}
		return db, nil
	default:
		db, err := storage.Open(cfg.Storage.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("open storage: %w", err)
		}
		return db, nil
	}
}
