// Package montecarlo repeats the fiscal projection over many independent
// trials and reduces the ensemble to per-year statistics.
//
// Trials are embarrassingly parallel: parameters are shared read-only and
// trial i always draws from its own generator, derived from the run's
// SimulationKey and i. Results are therefore identical for any worker count.
package montecarlo

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/fiscal-sim/fiscal-sim/sim"
	"github.com/fiscal-sim/fiscal-sim/sim/trace"
)

// Method tags results produced by this engine.
const Method = "Monte Carlo (Box-Muller)"

// Config controls one Monte Carlo run.
type Config struct {
	Years   int
	Trials  int               // must be in [MinTrials, MaxTrials]
	Key     sim.SimulationKey // master seed; trial i uses NewTrialRNG(Key, i)
	Workers int               // concurrent trials; values below 1 mean 1
}

// YearSummary holds the statistics of every tracked variable for one year,
// plus the raw samples (ordered by trial index) of the distribution subset.
type YearSummary struct {
	Year          int                           `json:"ano"`
	Statistics    map[string]VariableStatistics `json:"estadisticas"`
	Distributions map[string][]float64          `json:"distribuciones"`
}

// Result is the reduced outcome of a Monte Carlo run.
type Result struct {
	Trials int           `json:"num_simulaciones"`
	Years  []YearSummary `json:"resultados_estadisticos"`
	// Representative is the full trial at index RepresentativeIndex = Trials/2.
	// It is an illustrative path, not a statistically selected one.
	Representative      sim.SimulationResult `json:"simulacion_representativa"`
	RepresentativeIndex int                  `json:"indice_representativa"`
	Method              string               `json:"metodo"`
}

// RepresentativeIndex returns the trial index shown to users for a run of
// the given size.
func RepresentativeIndex(trials int) int {
	return trials / 2
}

// Run executes cfg.Trials independent trials of cfg.Years years and summarises
// them. The trial count is validated before any work starts. Cancelling ctx
// stops new trials from starting; Run then returns the context error.
func Run(ctx context.Context, p *sim.SimulationParameters, cfg Config) (*Result, error) {
	if cfg.Trials < MinTrials || cfg.Trials > MaxTrials {
		return nil, fmt.Errorf("%w: got %d, want %d..%d", ErrInvalidTrialCount, cfg.Trials, MinTrials, MaxTrials)
	}
	if cfg.Years < 0 {
		return nil, fmt.Errorf("montecarlo: years must be non-negative, got %d", cfg.Years)
	}

	workers := max(cfg.Workers, 1)
	repIdx := RepresentativeIndex(cfg.Trials)
	samples := newSampleMatrix(cfg.Years, cfg.Trials)
	var representative sim.SimulationResult

	logrus.Infof("Starting Monte Carlo: trials=%d years=%d workers=%d seed=%d",
		cfg.Trials, cfg.Years, workers, int64(cfg.Key))

	var completed atomic.Int64
	progressEvery := int64(max(cfg.Trials/10, 1))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < cfg.Trials; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sampler := sim.NewBoxMuller(sim.NewTrialRNG(cfg.Key, i))
			var res sim.SimulationResult
			if i == repIdx {
				res = sim.RunSingle(p, cfg.Years, sampler)
			} else {
				res = sim.RunWithTrace(p, cfg.Years, sampler, trace.TraceLevelNone)
			}

			samples.record(i, res.Years)
			if i == repIdx {
				representative = res
			}
			if n := completed.Add(1); n%progressEvery == 0 {
				logrus.Infof("Monte Carlo progress: %d/%d trials", n, cfg.Trials)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("montecarlo: run interrupted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("montecarlo: run interrupted: %w", err)
	}

	result := &Result{
		Trials:              cfg.Trials,
		Years:               summarize(samples, representative.Years, cfg.Years),
		Representative:      representative,
		RepresentativeIndex: repIdx,
		Method:              Method,
	}
	logrus.Infof("Monte Carlo complete: %d trials", cfg.Trials)
	return result, nil
}

// summarize reduces the sample matrix year by year. Year labels are taken from
// the representative trial; every trial labels its years identically.
func summarize(m *sampleMatrix, labels []sim.YearState, years int) []YearSummary {
	out := make([]YearSummary, years)
	for y := 0; y < years; y++ {
		ys := YearSummary{
			Statistics:    make(map[string]VariableStatistics, len(trackedVariables)),
			Distributions: make(map[string][]float64),
		}
		if y < len(labels) {
			ys.Year = labels[y].Year
		}
		for v, tv := range trackedVariables {
			column := m.values[v][y]
			ys.Statistics[tv.name] = ComputeStatistics(column)
			if tv.distribution {
				ys.Distributions[tv.name] = column
			}
		}
		out[y] = ys
	}
	return out
}
