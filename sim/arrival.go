// Defines the Arrival struct that models one rider joining the dispatch queue.

package sim

import (
	"fmt"
	"math"
	"time"
)

// MaxTimelineSeconds is the largest offset from the epoch that a time.Duration can hold.
const MaxTimelineSeconds = float64(math.MaxInt64 / int64(time.Second))

// Arrival is a single rider with a fixed arrival time.
// Arrivals are immutable once created. The simulator consumes them in
// ascending ID order, not arrival-time order; the generator assigns IDs
// chronologically so the two normally coincide, but only ID order is contractual.
type Arrival struct {
	ID      int       `json:"id"`           // Stable external identity
	Instant time.Time `json:"arrival_time"` // Wall-clock arrival instant
	Seconds float64   `json:"seconds"`      // Offset from the simulation epoch
}

// NewArrival builds an Arrival whose instant is derived from the epoch and offset.
func NewArrival(id int, epoch time.Time, seconds float64) Arrival {
	return Arrival{
		ID:      id,
		Instant: epoch.Add(secondsToDuration(seconds)),
		Seconds: seconds,
	}
}

// This method returns a human-readable string representation of an Arrival.
func (a Arrival) String() string {
	return fmt.Sprintf("Arrival: (ID: %d, Seconds: %.3f)", a.ID, a.Seconds)
}

// validate rejects arrivals whose offset cannot be placed on the dispatch timeline.
func (a Arrival) validate() error {
	if math.IsNaN(a.Seconds) || math.IsInf(a.Seconds, 0) {
		return fmt.Errorf("arrival %d: seconds must be a finite number, got %f", a.ID, a.Seconds)
	}
	if a.Seconds < 0 {
		return fmt.Errorf("arrival %d: seconds must be non-negative, got %f", a.ID, a.Seconds)
	}
	if a.Seconds > MaxTimelineSeconds {
		return fmt.Errorf("arrival %d: seconds %.0f exceed the representable timeline (%.0f)", a.ID, a.Seconds, MaxTimelineSeconds)
	}
	return nil
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
