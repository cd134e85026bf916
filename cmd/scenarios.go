package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fiscal-sim/fiscal-sim/sim"
)

func newScenariosCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List the named shock scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := sim.LoadDefaults(opts.defaultsFilePath)
			if err != nil {
				return err
			}
			if opts.output == OutputJSON {
				return writeJSON(cmd.OutOrStdout(), d.Scenarios)
			}
			renderScenarios(cmd.OutOrStdout(), d.Scenarios)
			return nil
		},
	}
}
