// Package sim provides the periodic-dispatch simulation engine for shuttle-sim.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - arrival.go: the Arrival record and its validation
//   - queue.go: the ID-ordered arrival cursor and queue-depth measurement
//   - simulator.go: the tick loop (timeout sweep, depth, boarding pass)
//   - metrics.go: the Result and its derived Summary
//
// # Policy
//
// Riders are consumed strictly in ascending ID order, never re-sorted by arrival
// time. Within a tick, riders past the wait tolerance are removed before any
// boarding so they never occupy a capacity slot. Ticks that board nobody are
// counted but produce no DispatchBatch.
//
// # Sub-packages
//   - sim/workload/: hourly arrival generation and arrival file I/O
//   - sim/report/: text rendering of a Result
//   - sim/trace/: optional per-tick decision trace
package sim
