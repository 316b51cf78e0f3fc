package trace

// TraceLevel controls the verbosity of tick tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelTicks captures one record per dispatch tick.
	TraceLevelTicks TraceLevel = "ticks"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:  true,
	TraceLevelTicks: true,
	"":              true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// SimulationTrace collects tick records during a dispatch simulation.
type SimulationTrace struct {
	Level TraceLevel
	Ticks []TickRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
// Returns nil when level disables tracing, so callers can assign it directly.
func NewSimulationTrace(level TraceLevel) *SimulationTrace {
	if level == TraceLevelNone || level == "" {
		return nil
	}
	return &SimulationTrace{
		Level: level,
		Ticks: make([]TickRecord, 0),
	}
}

// RecordTick appends a tick record.
func (st *SimulationTrace) RecordTick(record TickRecord) {
	st.Ticks = append(st.Ticks, record)
}
