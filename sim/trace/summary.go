package trace

// StepSummary aggregates alert statistics from a step log.
type StepSummary struct {
	TotalSteps      int
	YearsWithAlerts int
	TotalAlerts     int
	FirstAlertYear  int            // 0 when no year raised an alert
	AlertsByKind    map[string]int // indicator name → number of years it breached
}

// Summarize computes aggregate statistics from a list of steps.
// Safe for nil or empty input (returns zero-value fields).
func Summarize(steps []SimulationStep) *StepSummary {
	summary := &StepSummary{
		AlertsByKind: make(map[string]int),
	}
	summary.TotalSteps = len(steps)

	for _, s := range steps {
		if len(s.Impacts) == 0 {
			continue
		}
		summary.YearsWithAlerts++
		summary.TotalAlerts += len(s.Impacts)
		if summary.FirstAlertYear == 0 {
			summary.FirstAlertYear = s.Year
		}
		for _, v := range s.Variables {
			summary.AlertsByKind[v]++
		}
	}
	return summary
}
