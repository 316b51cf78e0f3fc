package sim

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// SweepResult pairs one grid point with its outcome.
type SweepResult struct {
	Config DispatchConfig
	Result *Result
}

// Sweep runs one simulation per config over the same arrivals, concurrently.
// Results are returned in the order of configs. Every config is validated
// before any simulation starts; the first invalid one aborts the sweep.
func Sweep(arrivals []Arrival, configs []DispatchConfig) ([]SweepResult, error) {
	sims := make([]*Simulator, len(configs))
	for i, cfg := range configs {
		s, err := NewSimulator(arrivals, cfg)
		if err != nil {
			return nil, fmt.Errorf("sweep point %d (%s): %w", i, cfg, err)
		}
		sims[i] = s
	}

	results := make([]SweepResult, len(configs))
	var wg sync.WaitGroup
	for i, s := range sims {
		wg.Add(1)
		go func(i int, s *Simulator) {
			defer wg.Done()
			results[i] = SweepResult{Config: s.Config, Result: s.Run()}
		}(i, s)
	}
	wg.Wait()
	logrus.Infof("Sweep complete: %d configurations", len(results))
	return results, nil
}
