package trace

import "testing"

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN no steps
	// WHEN summarized
	summary := Summarize(nil)

	// THEN all counts are zero
	if summary.TotalSteps != 0 || summary.YearsWithAlerts != 0 || summary.TotalAlerts != 0 {
		t.Errorf("expected zero counts, got %+v", summary)
	}
	if summary.FirstAlertYear != 0 {
		t.Errorf("expected no first alert year, got %d", summary.FirstAlertYear)
	}
	if len(summary.AlertsByKind) != 0 {
		t.Error("expected empty alert distribution")
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN four years, two of which raised alerts
	steps := []SimulationStep{
		{Index: 0, Year: 2020},
		{Index: 1, Year: 2021, Variables: []string{"subsidio_gas"}, Impacts: []string{"a"}},
		{Index: 2, Year: 2022},
		{Index: 3, Year: 2023, Variables: []string{"subsidio_gas", "rin_meses"}, Impacts: []string{"a", "b"}},
	}

	// WHEN summarized
	summary := Summarize(steps)

	// THEN counts match
	if summary.TotalSteps != 4 {
		t.Errorf("expected 4 steps, got %d", summary.TotalSteps)
	}
	if summary.YearsWithAlerts != 2 {
		t.Errorf("expected 2 years with alerts, got %d", summary.YearsWithAlerts)
	}
	if summary.TotalAlerts != 3 {
		t.Errorf("expected 3 alerts, got %d", summary.TotalAlerts)
	}
	if summary.FirstAlertYear != 2021 {
		t.Errorf("expected first alert in 2021, got %d", summary.FirstAlertYear)
	}
}

func TestSummarize_AlertsByKind_CountsPerIndicator(t *testing.T) {
	steps := []SimulationStep{
		{Year: 2020, Variables: []string{"deuda_pib"}, Impacts: []string{"x"}},
		{Year: 2021, Variables: []string{"deuda_pib", "deficit_pib"}, Impacts: []string{"x", "y"}},
	}

	summary := Summarize(steps)

	if summary.AlertsByKind["deuda_pib"] != 2 {
		t.Errorf("expected deuda_pib count 2, got %d", summary.AlertsByKind["deuda_pib"])
	}
	if summary.AlertsByKind["deficit_pib"] != 1 {
		t.Errorf("expected deficit_pib count 1, got %d", summary.AlertsByKind["deficit_pib"])
	}
}
