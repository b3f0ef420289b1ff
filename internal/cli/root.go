package cli

import (
	"fmt"
	"log/slog"

	"eventlineup/config"

	"github.com/spf13/cobra"
)

// RootOptions holds state shared by all commands.
type RootOptions struct {
	Config *config.Config
	Logger *slog.Logger
}

// NewRootCommand creates the root command for the lineup API.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "eventlineup",
		Short: "Event lineup scheduling API",
		Long:  "Schedules artist performances inside events, rejecting slots that leave the event window or overlap each other.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			opts.Config = cfg
			opts.Logger = config.NewLogger()
			return nil
		},
		SilenceUsage: true,
	}

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))

	return cmd
}
