package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/faizmokh/pulse/internal/server"
)

func newServeCommand(ctx context.Context, a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard view as JSON over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.Config.Addr
			}
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			handler := server.NewHandler(a.Fetcher)
			return server.Run(ctx, addr, handler.Router())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, defaults to PULSE_ADDR")
	return cmd
}
