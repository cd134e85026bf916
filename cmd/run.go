package cmd

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fiscal-sim/fiscal-sim/sim"
	"github.com/fiscal-sim/fiscal-sim/sim/trace"
)

// newRunCmd executes one stochastic projection using parameters from CLI flags
func newRunCmd(opts *options) *cobra.Command {
	var traceLevel string // Step log verbosity: none or steps

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a single stochastic fiscal projection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !trace.IsValidTraceLevel(traceLevel) {
				return fmt.Errorf("invalid trace level %q (want none or steps)", traceLevel)
			}
			p, _, err := opts.resolveParameters(cmd)
			if err != nil {
				return err
			}

			// --seed N draws from rand.NewSource(N)
			rng := sim.NewPartitionedRNG(sim.NewSimulationKey(opts.seed))

			logrus.WithFields(logrus.Fields{
				"years":    p.Years,
				"seed":     int64(rng.Key()),
				"scenario": opts.scenarioID,
				"trace":    traceLevel,
			}).Info("Starting simulation")
			startTime := time.Now()

			sampler := sim.NewBoxMuller(rng.ForSubsystem(sim.SubsystemShocks))
			res := sim.RunWithTrace(p, p.Years, sampler, trace.TraceLevel(traceLevel))

			logrus.WithField("elapsed", time.Since(startTime)).Info("Simulation complete.")
			return writeRun(cmd, opts.output, p, res)
		},
	}
	cmd.Flags().StringVar(&traceLevel, "trace", string(trace.TraceLevelSteps), "Step log level (none, steps)")
	return cmd
}

func writeRun(cmd *cobra.Command, format string, p *sim.SimulationParameters, res sim.SimulationResult) error {
	w := cmd.OutOrStdout()
	switch format {
	case OutputJSON:
		return writeJSON(w, res)
	case OutputCSV:
		return writeYearsCSV(w, res.Years)
	default:
		renderRun(w, p, res)
		return nil
	}
}
