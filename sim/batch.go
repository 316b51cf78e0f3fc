// batch.go
//
// Defines the records produced at each dispatch tick: the batch of riders carried,
// and the riders who gave up waiting.

package sim

import "time"

// Boarding is one rider successfully carried by a dispatch.
type Boarding struct {
	PersonID         int
	ArrivalInstant   time.Time
	DepartureInstant time.Time
	WaitingSeconds   float64
}

// Abandonment is one rider removed from the queue after exceeding the wait tolerance.
// BatchNumber is the tick at which the timeout was detected.
type Abandonment struct {
	PersonID       int
	ArrivalInstant time.Time
	AbandonInstant time.Time
	WaitingSeconds float64
	BatchNumber    int
}

// DispatchBatch represents the riders carried by a single dispatch tick.
// Only ticks that board at least one rider produce a DispatchBatch.
type DispatchBatch struct {
	Number     int        // 1-based tick number
	Passengers []Boarding // in boarding order
}

// NewDispatchBatch creates a new DispatchBatch for the given tick.
func NewDispatchBatch(number int, passengers []Boarding) DispatchBatch {
	return DispatchBatch{Number: number, Passengers: passengers}
}

// Len returns the number of riders carried.
func (b DispatchBatch) Len() int {
	return len(b.Passengers)
}
