// Package testutil provides shared test infrastructure for the shuttle-sim simulator.
// It holds the golden scenario types and assertion helpers used by sim/ tests.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/scenarios.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase represents a single hand-checked dispatch scenario.
type GoldenTestCase struct {
	Name           string          `json:"name"`
	Capacity       int             `json:"capacity"`
	PeriodSeconds  int64           `json:"period_s"`
	MaxWaitSeconds float64         `json:"max_wait_s"`
	Arrivals       []GoldenArrival `json:"arrivals"`
	Expected       GoldenOutcome   `json:"expected"`
}

// GoldenArrival is an arrival given only by ID and offset.
type GoldenArrival struct {
	ID      int     `json:"id"`
	Seconds float64 `json:"seconds"`
}

// GoldenOutcome represents the expected result of a golden scenario.
type GoldenOutcome struct {
	Batches       []GoldenBatch       `json:"batches"`
	Abandonments  []GoldenAbandonment `json:"abandonments"`
	Ticks         int                 `json:"ticks"`
	MaxQueueDepth int                 `json:"max_queue_depth"`
	LongWaitCount int                 `json:"long_wait_count"`
	MeanWait      float64             `json:"mean_wait_s"`
}

// GoldenBatch lists the riders carried by one tick, in boarding order.
type GoldenBatch struct {
	Number int       `json:"number"`
	IDs    []int     `json:"ids"`
	Waits  []float64 `json:"waits"`
}

// GoldenAbandonment is one expected abandonment, in detection order.
type GoldenAbandonment struct {
	ID    int     `json:"id"`
	Batch int     `json:"batch"`
	Wait  float64 `json:"wait"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "scenarios.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
