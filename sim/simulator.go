// sim/simulator.go
package sim

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/shuttle-sim/sim/trace"
)

// Simulator holds the dispatch clock, the arrival cursor and the accumulated result.
// A Simulator owns all of its state; separate Simulators may run concurrently.
type Simulator struct {
	// Clock is the time of the next dispatch tick, in seconds since the epoch.
	Clock int64
	// BatchNumber is the 1-based number of the next tick. It advances every tick,
	// including ticks that carry nobody.
	BatchNumber int
	Config      DispatchConfig
	// Queue is the ID-ordered stream of riders still waiting or yet to arrive.
	Queue  *ArrivalQueue
	Result *Result
	// Trace records per-tick decisions when non-nil.
	Trace *trace.SimulationTrace
}

// NewSimulator validates the config and arrivals and prepares the first tick
// at one dispatch period after the epoch.
// Arrivals are copied and ordered by ID; duplicate IDs are rejected.
func NewSimulator(arrivals []Arrival, cfg DispatchConfig) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dispatch config: %w", err)
	}
	ordered := make([]Arrival, len(arrivals))
	copy(ordered, arrivals)
	latest := 0.0
	for _, a := range ordered {
		if err := a.validate(); err != nil {
			return nil, err
		}
		latest = math.Max(latest, a.Seconds)
	}
	// Every rider leaves by the tick after the latest arrival plus one tick per rider,
	// so this horizon bounds the clock.
	horizon := latest + float64(cfg.PeriodSeconds)*float64(len(ordered)+1)
	if horizon > MaxTimelineSeconds {
		return nil, fmt.Errorf("dispatch horizon %.0fs exceeds the representable timeline (%.0fs)", horizon, MaxTimelineSeconds)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ID < ordered[j].ID
	})
	for i := 1; i < len(ordered); i++ {
		if ordered[i].ID == ordered[i-1].ID {
			return nil, fmt.Errorf("duplicate arrival id %d", ordered[i].ID)
		}
	}

	s := &Simulator{
		Clock:       cfg.PeriodSeconds,
		BatchNumber: 1,
		Config:      cfg,
		Queue:       NewArrivalQueue(ordered),
		Result:      NewResult(len(ordered), cfg.PeriodSeconds),
	}
	return s, nil
}

// Simulate runs a dispatch simulation to completion.
func Simulate(arrivals []Arrival, cfg DispatchConfig) (*Result, error) {
	s, err := NewSimulator(arrivals, cfg)
	if err != nil {
		return nil, err
	}
	return s.Run(), nil
}

// Run executes ticks until every arrival has boarded or abandoned.
func (sim *Simulator) Run() *Result {
	logrus.Infof("Starting dispatch simulation: %d arrivals, %s", sim.Queue.Len(), sim.Config)
	for !sim.Queue.Empty() {
		sim.Step()
	}
	logrus.Infof("[tick %07d] Simulation ended after %d ticks: served=%d abandoned=%d",
		sim.Clock, sim.Result.Ticks, sim.Result.Served(), sim.Result.Abandoned())
	return sim.Result
}

// Step executes a single dispatch tick:
//   - abandon riders at the head of the queue who are past tolerance
//   - measure queue depth
//   - board up to Capacity riders who have arrived by now
//   - advance the batch number and clock by one period
func (sim *Simulator) Step() {
	now := float64(sim.Clock)
	maxWait := sim.Config.MaxWaitSeconds
	var abandonedIDs []int

	// Timed-out riders must leave before boarding so they never take a slot.
	for {
		a, ok := sim.Queue.Peek()
		if !ok || a.Seconds > now || now-a.Seconds <= maxWait {
			break
		}
		sim.Queue.Dequeue()
		sim.abandon(a)
		abandonedIDs = append(abandonedIDs, a.ID)
	}

	depth := sim.Queue.Depth(now, maxWait)
	if depth > sim.Result.MaxQueueDepth {
		sim.Result.MaxQueueDepth = depth
	}

	var passengers []Boarding
	for len(passengers) < sim.Config.Capacity {
		a, ok := sim.Queue.Peek()
		if !ok || a.Seconds > now {
			break
		}
		sim.Queue.Dequeue()
		// IDs are not guaranteed to follow arrival time, so a rider behind the
		// head can still be past tolerance here.
		if now-a.Seconds > maxWait {
			sim.abandon(a)
			abandonedIDs = append(abandonedIDs, a.ID)
			continue
		}
		passengers = append(passengers, sim.board(a))
	}

	if len(passengers) > 0 {
		sim.Result.Batches = append(sim.Result.Batches, NewDispatchBatch(sim.BatchNumber, passengers))
	}
	logrus.Debugf("[tick %07d] batch %d: depth=%d boarded=%d abandoned=%d remaining=%d",
		sim.Clock, sim.BatchNumber, depth, len(passengers), len(abandonedIDs), sim.Queue.Len())
	logrus.Tracef("[tick %07d] still queued: %s", sim.Clock, sim.Queue)

	if sim.Trace != nil {
		boardedIDs := make([]int, len(passengers))
		for i, p := range passengers {
			boardedIDs[i] = p.PersonID
		}
		sim.Trace.RecordTick(trace.TickRecord{
			BatchNumber: sim.BatchNumber,
			Clock:       sim.Clock,
			QueueDepth:  depth,
			Capacity:    sim.Config.Capacity,
			Boarded:     boardedIDs,
			Abandoned:   abandonedIDs,
		})
	}

	sim.Result.Ticks++
	sim.BatchNumber++
	sim.Clock += sim.Config.PeriodSeconds
}

func (sim *Simulator) board(a Arrival) Boarding {
	wait := float64(sim.Clock) - a.Seconds
	sim.Result.WaitingTimes = append(sim.Result.WaitingTimes, wait)
	if wait > LongWaitThresholdSeconds {
		sim.Result.LongWaitCount++
	}
	return Boarding{
		PersonID:         a.ID,
		ArrivalInstant:   a.Instant,
		DepartureInstant: sim.tickInstant(),
		WaitingSeconds:   wait,
	}
}

func (sim *Simulator) abandon(a Arrival) {
	sim.Result.Abandonments = append(sim.Result.Abandonments, Abandonment{
		PersonID:       a.ID,
		ArrivalInstant: a.Instant,
		AbandonInstant: sim.tickInstant(),
		WaitingSeconds: float64(sim.Clock) - a.Seconds,
		BatchNumber:    sim.BatchNumber,
	})
}

func (sim *Simulator) tickInstant() time.Time {
	return sim.Config.epoch().Add(time.Duration(sim.Clock) * time.Second)
}
