package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fiscal-sim/fiscal-sim/sim"
)

// newDefaultsCmd prints the parameters a run would use after applying the
// parameter file, scenario and shock flags. The YAML output is accepted
// back by --params.
func newDefaultsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the effective simulation parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := opts.resolveParameters(cmd)
			if err != nil {
				return err
			}
			if opts.output == OutputJSON {
				return writeJSON(cmd.OutOrStdout(), p)
			}
			data, err := sim.MarshalParameters(p)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
