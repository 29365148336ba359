package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lk16/reversi/internal/config"
)

// Root returns the reversi command with all subcommands registered.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "reversi",
		Short: "Play reversi in the terminal",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			name := os.Getenv("LOG_LEVEL")
			if cmd.Flags().Changed("log-level") {
				name, _ = cmd.Flags().GetString("log-level")
			}

			return config.SetLogLevel(cmd.ErrOrStderr(), name)
		},
	}

	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (default $LOG_LEVEL or info)")

	root.AddCommand(Play())
	root.AddCommand(Autoplay())
	root.AddCommand(Show())

	return root
}
