package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "minimax",
		Short: "Play and study two-player games with a minimax search",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --debug flag is provided, set logging level to Debug.
			if cmd.Flag("debug").Changed {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().Bool("debug", false, "Show Debug Information")

	// Register the various commands.
	root.AddCommand(TicTacToe())
	root.AddCommand(Game2048())
	root.AddCommand(Experiment())

	return root
}
