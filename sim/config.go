package sim

import (
	"fmt"
	"math"
	"time"
)

const (
	// DefaultPeriodSeconds is the dispatch interval used when none is configured.
	DefaultPeriodSeconds = 300
	// DefaultMaxWaitSeconds is the wait tolerance used when none is configured.
	DefaultMaxWaitSeconds = 1200.0
	// LongWaitThresholdSeconds is the fixed reporting threshold for a long wait.
	// It is independent of MaxWaitSeconds.
	LongWaitThresholdSeconds = 1200.0
)

// DefaultEpoch is the instant that simulation offset zero maps to.
var DefaultEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// DispatchConfig groups the scalars that drive the dispatch simulation.
type DispatchConfig struct {
	Capacity       int       // max riders per batch (must be >= 1)
	PeriodSeconds  int64     // seconds between dispatch ticks (must be > 0)
	MaxWaitSeconds float64   // wait tolerance before a rider abandons (must be > 0)
	Epoch          time.Time // instant of offset zero; zero value means DefaultEpoch
}

// NewDispatchConfig returns a config with default period, tolerance and epoch.
func NewDispatchConfig(capacity int) DispatchConfig {
	return DispatchConfig{
		Capacity:       capacity,
		PeriodSeconds:  DefaultPeriodSeconds,
		MaxWaitSeconds: DefaultMaxWaitSeconds,
		Epoch:          DefaultEpoch,
	}
}

// Validate checks the numeric contract of the config.
func (c DispatchConfig) Validate() error {
	if c.Capacity < 1 {
		return fmt.Errorf("capacity must be at least 1, got %d", c.Capacity)
	}
	if c.PeriodSeconds <= 0 {
		return fmt.Errorf("dispatch period must be positive, got %d", c.PeriodSeconds)
	}
	if math.IsNaN(c.MaxWaitSeconds) {
		return fmt.Errorf("max wait must be a number, got NaN")
	}
	if c.MaxWaitSeconds <= 0 {
		return fmt.Errorf("max wait must be positive, got %f", c.MaxWaitSeconds)
	}
	return nil
}

func (c DispatchConfig) epoch() time.Time {
	if c.Epoch.IsZero() {
		return DefaultEpoch
	}
	return c.Epoch
}

// String renders the config the way sweep output labels it.
func (c DispatchConfig) String() string {
	return fmt.Sprintf("capacity=%d period=%ds max-wait=%gs", c.Capacity, c.PeriodSeconds, c.MaxWaitSeconds)
}
