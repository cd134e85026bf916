// Package sim provides the stochastic fiscal projection engine.
//
// # Reading Guide
//
// Start with these files to understand one simulated year:
//   - params.go: SimulationParameters, the read-only calibration of a run
//   - revenue.go / expenditure.go: the formula layer, one shock draw Z → all lines
//   - debt.go: debt stocks and net international reserves rolled forward
//   - year.go: NextYear, the year-to-year transition (prior YearState → YearState)
//   - simulator.go: RunSingle, the chain of transitions plus the step log
//
// # Randomness
//
// Each year draws exactly one standard-normal Z through a Sampler (Box–Muller
// over a UniformSource). Generators are never shared: a single run takes its
// stream from PartitionedRNG.ForSubsystem(SubsystemShocks), and Monte Carlo
// trial i takes NewTrialRNG(key, i). Identical keys give bit-identical results.
//
// # Sub-packages
//   - sim/montecarlo/: repeated trials, statistics, representative trial
//   - sim/trace/: step log records and summaries
//
// Static data (default calibration and named shock scenarios) is loaded from
// defaults.yaml by LoadDefaults; the engine itself performs no defaulting.
package sim
