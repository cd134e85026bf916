package montecarlo

import "errors"

const (
	// MinTrials and MaxTrials bound the number of trials of one run.
	MinTrials = 100
	MaxTrials = 10000
)

// ErrInvalidTrialCount is returned, wrapped with the offending count, when the
// trial count is outside [MinTrials, MaxTrials]. No simulation work is done.
var ErrInvalidTrialCount = errors.New("montecarlo: trial count out of range")
