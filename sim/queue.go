// Implements the ArrivalQueue, the ID-ordered stream of riders not yet boarded or abandoned.

package sim

import (
	"fmt"
	"strings"
)

// ArrivalQueue is a read-once cursor over arrivals sorted by ID.
// The cursor only moves forward: every arrival leaves the queue exactly once,
// either by boarding or by abandoning.
type ArrivalQueue struct {
	arrivals []Arrival
	next     int
}

// NewArrivalQueue wraps arrivals that are already sorted by ID.
func NewArrivalQueue(arrivals []Arrival) *ArrivalQueue {
	return &ArrivalQueue{arrivals: arrivals}
}

func (q *ArrivalQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, a := range q.arrivals[q.next:] {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprint(a.ID))
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of arrivals not yet consumed.
func (q *ArrivalQueue) Len() int {
	return len(q.arrivals) - q.next
}

// Empty reports whether the cursor has exhausted the input.
func (q *ArrivalQueue) Empty() bool {
	return q.next >= len(q.arrivals)
}

// Peek returns the arrival at the cursor without consuming it.
// Returns false if the queue is exhausted.
func (q *ArrivalQueue) Peek() (Arrival, bool) {
	if q.Empty() {
		return Arrival{}, false
	}
	return q.arrivals[q.next], true
}

// Dequeue consumes the arrival at the cursor.
func (q *ArrivalQueue) Dequeue() (Arrival, bool) {
	a, ok := q.Peek()
	if ok {
		q.next++
	}
	return a, ok
}

// Depth counts consecutive arrivals from the cursor that have arrived by now
// and are still within maxWait. Counting stops at the first arrival that is
// either in the future or already past tolerance.
func (q *ArrivalQueue) Depth(now, maxWait float64) int {
	n := 0
	for _, a := range q.arrivals[q.next:] {
		if a.Seconds > now || now-a.Seconds > maxWait {
			break
		}
		n++
	}
	return n
}
