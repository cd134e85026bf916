// sim/simulator.go
package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/fiscal-sim/fiscal-sim/sim/trace"
)

// SimulationResult is one complete trial: the year-by-year states and the
// step log written while producing them.
type SimulationResult struct {
	Years []YearState            `json:"resultados"`
	Steps []trace.SimulationStep `json:"pasos"`
}

// Final returns the last simulated year, or nil for an empty run.
func (r *SimulationResult) Final() *YearState {
	if len(r.Years) == 0 {
		return nil
	}
	return &r.Years[len(r.Years)-1]
}

// RunSingle chains years transitions, threading each year's state into the
// next, and returns the states plus a fresh step log. Two calls with samplers
// over identically seeded sources return identical results.
func RunSingle(p *SimulationParameters, years int, sampler Sampler) SimulationResult {
	return RunWithTrace(p, years, sampler, trace.TraceLevelSteps)
}

// RunWithTrace is RunSingle with a configurable step log. TraceLevelNone skips
// building step descriptions; the random draws are the same either way.
func RunWithTrace(p *SimulationParameters, years int, sampler Sampler, level trace.TraceLevel) SimulationResult {
	log := trace.NewStepLog(level)
	states := make([]YearState, 0, max(years, 0))

	var prior *YearState
	for i := 0; i < years; i++ {
		states = append(states, NextYear(p, i, prior, sampler, log))
		prior = &states[len(states)-1]
	}

	if len(states) > 0 {
		logrus.Debugf("Simulated %d years (%d-%d)", len(states), states[0].Year, states[len(states)-1].Year)
	}
	return SimulationResult{Years: states, Steps: log.Steps}
}
