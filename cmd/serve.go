package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hoopsight/cbbmetrics/internal/api"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the stored statistics over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	db, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}
	return api.NewServer(db).ListenAndServe(addr)
}
