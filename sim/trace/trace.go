package trace

// TraceLevel controls the verbosity of step logging.
type TraceLevel string

const (
	// TraceLevelNone disables step logging (Monte Carlo trials that are
	// never shown to the user).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelSteps records one SimulationStep per simulated year.
	TraceLevelSteps TraceLevel = "steps"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:  true,
	TraceLevelSteps: true,
	"":              true, // empty defaults to steps
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// StepLog collects the steps of a single run. It is created fresh for every
// run and is append-only.
type StepLog struct {
	Level TraceLevel
	Steps []SimulationStep
}

// NewStepLog creates a StepLog ready for recording.
func NewStepLog(level TraceLevel) *StepLog {
	if level == "" {
		level = TraceLevelSteps
	}
	return &StepLog{
		Level: level,
		Steps: make([]SimulationStep, 0),
	}
}

// Enabled reports whether steps are being recorded.
func (l *StepLog) Enabled() bool {
	return l != nil && l.Level != TraceLevelNone
}

// Record appends a step, assigning its index. No-op when logging is disabled.
func (l *StepLog) Record(step SimulationStep) {
	if !l.Enabled() {
		return
	}
	step.Index = len(l.Steps)
	l.Steps = append(l.Steps, step)
}
