package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"srtf-simulator/config"
	"srtf-simulator/internal/logging"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string

	config *config.SchedulerConfig
	logger *slog.Logger
}

// NewRootCmd builds the srtf command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "srtf",
		Short:         "Shortest-Remaining-Time-First CPU scheduling simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = opts.logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = opts.logFormat
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			opts.config = cfg
			opts.logger = logging.NewLoggerWithWriter(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, cmd.ErrOrStderr())
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ./config.yaml if present)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")

	cmd.AddCommand(newRunCmd(opts))
	cmd.AddCommand(newServeCmd(opts))
	return cmd
}
