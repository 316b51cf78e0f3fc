// Package trace provides per-tick decision recording for dispatch analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// TickRecord captures what a single dispatch tick decided.
type TickRecord struct {
	BatchNumber int
	Clock       int64 // tick time in seconds since the epoch
	QueueDepth  int   // riders waiting within tolerance before boarding
	Capacity    int
	Boarded     []int // rider IDs, in boarding order
	Abandoned   []int // rider IDs, in detection order
}

// Idle reports whether the tick neither boarded nor abandoned anyone.
func (r TickRecord) Idle() bool {
	return len(r.Boarded) == 0 && len(r.Abandoned) == 0
}

// Full reports whether the tick filled every capacity slot.
func (r TickRecord) Full() bool {
	return r.Capacity > 0 && len(r.Boarded) >= r.Capacity
}
