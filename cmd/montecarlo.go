package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fiscal-sim/fiscal-sim/sim"
	"github.com/fiscal-sim/fiscal-sim/sim/montecarlo"
)

// monteCarloOutput is the JSON document of one ensemble run.
type monteCarloOutput struct {
	RunID string `json:"id_ejecucion"`
	*montecarlo.Result
}

func newMonteCarloCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "montecarlo",
		Short: "Run many independent projections and summarise them per year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := opts.resolveParameters(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			runID := uuid.NewString()
			log := logrus.WithFields(logrus.Fields{
				"run":     runID,
				"trials":  opts.trials,
				"years":   p.Years,
				"seed":    opts.seed,
				"workers": opts.workers,
			})
			log.Info("Starting Monte Carlo run")
			startTime := time.Now()

			res, err := montecarlo.Run(ctx, p, montecarlo.Config{
				Years:   p.Years,
				Trials:  opts.trials,
				Key:     sim.NewSimulationKey(opts.seed),
				Workers: opts.workers,
			})
			if err != nil {
				return err
			}
			log.WithField("elapsed", time.Since(startTime)).Info("Monte Carlo run complete")

			w := cmd.OutOrStdout()
			switch opts.output {
			case OutputJSON:
				return writeJSON(w, monteCarloOutput{RunID: runID, Result: res})
			case OutputCSV:
				return writeMonteCarloCSV(w, res)
			default:
				renderMonteCarlo(w, p, res, runID)
				return nil
			}
		},
	}

	defaults := DefaultConfig()
	cmd.Flags().IntVar(&opts.trials, "trials", defaults.MonteCarlo.Trials, "Number of independent trials (100-10000)")
	cmd.Flags().IntVar(&opts.workers, "workers", defaults.MonteCarlo.Workers, "Trials run concurrently; results do not depend on it")
	return cmd
}
