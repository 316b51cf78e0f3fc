package workload

import (
	"fmt"
	"time"

	"github.com/inference-sim/shuttle-sim/sim"
)

// SecondsPerHour is the width of one bucket of the hourly arrival table.
const SecondsPerHour = 3600

// ArrivalSpec is the arrival-generation configuration.
// HourlyArrivals[h] riders arrive during hour h after the epoch.
type ArrivalSpec struct {
	Seed           int64     `yaml:"seed"`
	Epoch          time.Time `yaml:"epoch,omitempty"`
	Process        string    `yaml:"process,omitempty"` // "uniform" (default) or "constant"
	HourlyArrivals []int     `yaml:"hourly_arrivals"`
}

// Valid value registries.
var validProcesses = map[string]bool{
	"": true, "uniform": true, "constant": true,
}

// Validate checks the process name and hourly counts.
func (s *ArrivalSpec) Validate() error {
	if !validProcesses[s.Process] {
		return fmt.Errorf("unknown arrival process %q; valid: uniform, constant", s.Process)
	}
	for h, n := range s.HourlyArrivals {
		if n < 0 {
			return fmt.Errorf("hourly_arrivals[%d] must be non-negative, got %d", h, n)
		}
	}
	return nil
}

// Total returns the number of arrivals GenerateArrivals will produce.
func (s *ArrivalSpec) Total() int {
	total := 0
	for _, n := range s.HourlyArrivals {
		total += n
	}
	return total
}

func (s *ArrivalSpec) epoch() time.Time {
	if s.Epoch.IsZero() {
		return sim.DefaultEpoch
	}
	return s.Epoch
}
