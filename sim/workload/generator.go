package workload

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/shuttle-sim/sim"
)

// GenerateArrivals creates an arrival sequence from an ArrivalSpec.
// Deterministic given the same spec and seed.
// Returns arrivals sorted by time with IDs assigned chronologically from 1.
func GenerateArrivals(spec *ArrivalSpec) ([]sim.Arrival, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid arrival spec: %w", err)
	}

	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(spec.Seed))
	sampler := NewOffsetSampler(spec.Process)
	epoch := spec.epoch()

	arrivals := make([]sim.Arrival, 0, spec.Total())
	nextID := 1
	for hour, count := range spec.HourlyArrivals {
		if count == 0 {
			continue
		}
		// Per-hour RNG keeps each hour's draws independent of the others' counts.
		hourRNG := rng.ForSubsystem(sim.SubsystemHour(hour))
		base := float64(hour * SecondsPerHour)
		for _, offset := range sampler.SampleOffsets(hourRNG, count) {
			arrivals = append(arrivals, sim.NewArrival(nextID, epoch, base+offset))
			nextID++
		}
		logrus.Debugf("hour %d: generated %d arrivals", hour, count)
	}

	// Stable: riders with equal offsets keep ID order.
	sort.SliceStable(arrivals, func(i, j int) bool {
		return arrivals[i].Seconds < arrivals[j].Seconds
	})

	logrus.Infof("Generated %d arrivals over %d hours", len(arrivals), len(spec.HourlyArrivals))
	return arrivals, nil
}
