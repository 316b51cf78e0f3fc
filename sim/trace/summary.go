package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalTicks     int
	BusyTicks      int // ticks that boarded at least one rider
	AbandonOnly    int // ticks that only recorded abandonments
	IdleTicks      int // ticks with no boarding and no abandonment
	FullTicks      int // ticks that filled capacity
	MeanQueueDepth float64
	MaxQueueDepth  int
	TotalBoarded   int
	TotalAbandoned int
	DepthHistogram map[int]int // queue depth → number of ticks
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		DepthHistogram: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalTicks = len(st.Ticks)
	totalDepth := 0
	for _, r := range st.Ticks {
		switch {
		case len(r.Boarded) > 0:
			summary.BusyTicks++
		case len(r.Abandoned) > 0:
			summary.AbandonOnly++
		default:
			summary.IdleTicks++
		}
		if r.Full() {
			summary.FullTicks++
		}
		summary.TotalBoarded += len(r.Boarded)
		summary.TotalAbandoned += len(r.Abandoned)
		summary.DepthHistogram[r.QueueDepth]++
		totalDepth += r.QueueDepth
		if r.QueueDepth > summary.MaxQueueDepth {
			summary.MaxQueueDepth = r.QueueDepth
		}
	}
	if summary.TotalTicks > 0 {
		summary.MeanQueueDepth = float64(totalDepth) / float64(summary.TotalTicks)
	}

	return summary
}
