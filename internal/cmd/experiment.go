package cmd

import (
	"fmt"

	"minimax/experiments"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func Experiment() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "experiment [config-file]",
		Short: "Run self-play experiments between agents",
		Args:  cobra.MaximumNArgs(1),
		Long: heredoc.Doc(`experiment plays every match-up of the given yaml config file
			a number of times and writes the agent configs, game records
			and move records as CSV files into a new timestamped directory.

			Without a config file, minimax agents of increasing depth play
			against a random baseline. Settings can be overridden with the
			environment variables listed by --env-help.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			if envHelp, _ := cmd.Flags().GetBool("env-help"); envHelp {
				usage, err := experiments.Usage()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), usage)
				return nil
			}

			var config *experiments.Config
			var err error
			if len(args) == 1 {
				config, err = experiments.Load(args[0])
			} else {
				config, err = experiments.Default()
			}
			if err != nil {
				return err
			}

			dir, err := experiments.Run(config)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}

	cmd.Flags().Bool("env-help", false, "List the environment variables of the config")
	return cmd
}
