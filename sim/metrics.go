// Tracks dispatch outcomes and derives the end-of-run statistics.

package sim

import "sort"

// Result aggregates everything a dispatch simulation produces.
type Result struct {
	Batches       []DispatchBatch // in increasing Number; ticks that boarded nobody are absent
	Abandonments  []Abandonment   // in detection order
	WaitingTimes  []float64       // per boarded rider, in boarding order
	LongWaitCount int             // boarded riders whose wait exceeded LongWaitThresholdSeconds
	MaxQueueDepth int             // largest queue depth observed at any tick

	TotalArrivals int   // size of the input
	Ticks         int   // dispatch ticks executed, including idle ones
	PeriodSeconds int64 // dispatch period the result was produced with
}

// NewResult creates an empty Result for a run over totalArrivals riders.
func NewResult(totalArrivals int, periodSeconds int64) *Result {
	return &Result{
		Batches:       make([]DispatchBatch, 0),
		Abandonments:  make([]Abandonment, 0),
		WaitingTimes:  make([]float64, 0),
		TotalArrivals: totalArrivals,
		PeriodSeconds: periodSeconds,
	}
}

// Served returns the number of riders carried across all batches.
func (r *Result) Served() int {
	n := 0
	for _, b := range r.Batches {
		n += b.Len()
	}
	return n
}

// Abandoned returns the number of riders who gave up waiting.
func (r *Result) Abandoned() int {
	return len(r.Abandonments)
}

// Summary holds the derived statistics printed at the end of a run.
// All wait statistics are in seconds and are zero when nobody boarded.
type Summary struct {
	TotalArrivals   int
	Batches         int
	Ticks           int
	Served          int
	Abandoned       int
	RunTimeSeconds  int64 // batches × period
	MeanWait        float64
	MinWait         float64
	MaxWait         float64
	P50Wait         float64
	P90Wait         float64
	P99Wait         float64
	MaxQueueDepth   int
	LongWaitCount   int
	LongWaitPercent float64 // of all input arrivals
}

// Summarize derives the end-of-run statistics.
func (r *Result) Summarize() Summary {
	s := Summary{
		TotalArrivals:  r.TotalArrivals,
		Batches:        len(r.Batches),
		Ticks:          r.Ticks,
		Served:         r.Served(),
		Abandoned:      r.Abandoned(),
		RunTimeSeconds: int64(len(r.Batches)) * r.PeriodSeconds,
		MaxQueueDepth:  r.MaxQueueDepth,
		LongWaitCount:  r.LongWaitCount,
	}
	if len(r.WaitingTimes) > 0 {
		sorted := make([]float64, len(r.WaitingTimes))
		copy(sorted, r.WaitingTimes)
		sort.Float64s(sorted)
		s.MeanWait = CalculateMean(sorted)
		s.MinWait = sorted[0]
		s.MaxWait = sorted[len(sorted)-1]
		s.P50Wait = CalculatePercentile(sorted, 50)
		s.P90Wait = CalculatePercentile(sorted, 90)
		s.P99Wait = CalculatePercentile(sorted, 99)
	}
	if r.TotalArrivals > 0 {
		s.LongWaitPercent = float64(r.LongWaitCount) / float64(r.TotalArrivals) * 100
	}
	return s
}
