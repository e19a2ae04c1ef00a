package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/kotus/internal/server"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON REST API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (default: server.addr from config)")

	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := cfg.Server.Addr
	if a, _ := cmd.Flags().GetString("addr"); a != "" {
		addr = a
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return server.Run(ctx, addr, server.New(cfg.Server, logger), logger)
}
