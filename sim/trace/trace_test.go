package trace

import (
	"testing"
)

func TestStepLog_Record_AssignsSequentialIndex(t *testing.T) {
	// GIVEN a step log
	log := NewStepLog(TraceLevelSteps)

	// WHEN three steps are recorded
	for year := 2020; year < 2023; year++ {
		log.Record(SimulationStep{Year: year, Description: "year"})
	}

	// THEN indices follow recording order
	if len(log.Steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(log.Steps))
	}
	for i, s := range log.Steps {
		if s.Index != i {
			t.Errorf("step %d has index %d", i, s.Index)
		}
		if s.Year != 2020+i {
			t.Errorf("step %d has year %d, want %d", i, s.Year, 2020+i)
		}
	}
}

func TestStepLog_Record_IgnoresCallerIndex(t *testing.T) {
	log := NewStepLog(TraceLevelSteps)
	log.Record(SimulationStep{Index: 41, Year: 2020})
	if log.Steps[0].Index != 0 {
		t.Errorf("expected index 0, got %d", log.Steps[0].Index)
	}
}

func TestStepLog_LevelNone_RecordsNothing(t *testing.T) {
	// GIVEN a disabled log
	log := NewStepLog(TraceLevelNone)

	// WHEN a step is recorded
	log.Record(SimulationStep{Year: 2020})

	// THEN nothing is kept
	if log.Enabled() {
		t.Error("expected disabled log")
	}
	if len(log.Steps) != 0 {
		t.Errorf("expected 0 steps, got %d", len(log.Steps))
	}
}

func TestStepLog_NilReceiver_IsDisabled(t *testing.T) {
	var log *StepLog
	if log.Enabled() {
		t.Error("nil log must report disabled")
	}
	log.Record(SimulationStep{Year: 2020}) // must not panic
}

func TestNewStepLog_EmptyLevel_DefaultsToSteps(t *testing.T) {
	log := NewStepLog("")
	if log.Level != TraceLevelSteps {
		t.Errorf("expected level %q, got %q", TraceLevelSteps, log.Level)
	}
	if !log.Enabled() {
		t.Error("expected enabled log")
	}
}

func TestIsValidTraceLevel_ValidLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"steps", true},
		{"", true}, // empty defaults to steps
		{"decisions", false},
		{"foobar", false},
		{"STEPS", false}, // case-sensitive
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := IsValidTraceLevel(tt.level); got != tt.valid {
				t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tt.level, got, tt.valid)
			}
		})
	}
}
