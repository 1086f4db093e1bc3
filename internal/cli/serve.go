package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"srtf-simulator/api"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				root.config.Port = port
				if err := root.config.Validate(); err != nil {
					return err
				}
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return api.Serve(ctx, root.config, root.logger)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides config)")
	return cmd
}
