package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/shuttle-sim/sim/trace"
	"github.com/inference-sim/shuttle-sim/sim/workload"
)

// pipelineConfig returns a config whose files all live in a temp dir.
func pipelineConfig(t *testing.T) *RunConfig {
	t.Helper()
	dir := t.TempDir()
	cfg := &RunConfig{
		Capacity:       5,
		HourlyArrivals: []int{40, 10, 60},
		ArrivalsFile:   filepath.Join(dir, "arrivals.json"),
		OutputFile:     filepath.Join(dir, "result.txt"),
	}
	cfg.applyDefaults()
	return cfg
}

func TestGenerateThenRun_WritesArrivalsRosterAndReport(t *testing.T) {
	// GIVEN a config with a three-hour table
	cfg := pipelineConfig(t)

	// WHEN arrivals are generated and the simulation runs
	n, err := generateArrivals(cfg)
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, runSimulation(cfg, trace.TraceLevelTicks, &out))

	// THEN all three files exist and agree on the arrival count
	assert.Equal(t, 110, n)
	arrivals, err := workload.LoadArrivals(cfg.ArrivalsFile)
	require.NoError(t, err)
	assert.Len(t, arrivals, 110)

	roster, err := os.ReadFile(cfg.RosterFile)
	require.NoError(t, err)
	assert.Equal(t, 110, strings.Count(string(roster), "\n"))

	reportText, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(reportText), "\nBatch 1:\n")
	assert.Contains(t, string(reportText), "\nStatistics:\n")

	// THEN the console summary includes trace lines
	assert.Contains(t, out.String(), "=== Simulation Summary ===")
	assert.Contains(t, out.String(), "Arrivals             : 110\n")
	assert.Contains(t, out.String(), "Mean Queue Depth")
}

func TestRunSimulation_InvalidCapacity_WritesNothing(t *testing.T) {
	cfg := pipelineConfig(t)
	_, err := generateArrivals(cfg)
	require.NoError(t, err)
	cfg.Capacity = 0

	var out bytes.Buffer
	err = runSimulation(cfg, trace.TraceLevelNone, &out)

	require.Error(t, err)
	assert.Empty(t, out.String())
	_, statErr := os.Stat(cfg.OutputFile)
	assert.True(t, os.IsNotExist(statErr), "no report on failure")
}

func TestRunSimulation_MissingArrivals_ReturnsError(t *testing.T) {
	cfg := pipelineConfig(t)

	err := runSimulation(cfg, trace.TraceLevelNone, &bytes.Buffer{})

	assert.Error(t, err)
}

func TestGenerateArrivals_SameSeed_SameFile(t *testing.T) {
	cfg := pipelineConfig(t)
	_, err := generateArrivals(cfg)
	require.NoError(t, err)
	first, err := os.ReadFile(cfg.ArrivalsFile)
	require.NoError(t, err)

	_, err = generateArrivals(cfg)
	require.NoError(t, err)
	second, err := os.ReadFile(cfg.ArrivalsFile)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSweepGrid_CartesianProduct(t *testing.T) {
	base := pipelineConfig(t)

	grid, err := sweepGrid(base, []int{1, 2}, []int64{300, 600, 900}, nil)
	require.NoError(t, err)

	// THEN every combination appears, and the unset axis uses the config value
	require.Len(t, grid, 6)
	assert.Equal(t, 1, grid[0].Capacity)
	assert.Equal(t, int64(300), grid[0].PeriodSeconds)
	assert.Equal(t, 2, grid[5].Capacity)
	assert.Equal(t, int64(900), grid[5].PeriodSeconds)
	for _, dc := range grid {
		assert.Equal(t, base.MaxWaitSeconds, dc.MaxWaitSeconds)
	}

	// THEN the base config is left untouched
	assert.Equal(t, 5, base.Capacity)
	assert.Equal(t, int64(300), base.DispatchPeriodSeconds)
}

func TestSweepPoints_EachPointOwnsItsConfig(t *testing.T) {
	// GIVEN a base config with a seed and an hourly table
	base := pipelineConfig(t)

	// WHEN two points are expanded and one is edited
	points, err := sweepPoints(base, []int{1, 2}, nil, nil)
	require.NoError(t, err)
	require.Len(t, points, 2)
	points[0].HourlyArrivals[0] = 999
	*points[0].Seed = 7

	// THEN neither the base nor the sibling point sees the edit
	assert.Equal(t, []int{40, 10, 60}, base.HourlyArrivals)
	assert.Equal(t, []int{40, 10, 60}, points[1].HourlyArrivals)
	assert.Equal(t, int64(42), *base.Seed)
	assert.Equal(t, int64(42), *points[1].Seed)
}

func TestSweepGrid_InvalidPoint_ReturnsError(t *testing.T) {
	_, err := sweepGrid(pipelineConfig(t), []int{3, 0}, nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "capacity=0")
}

func TestRunSweep_PrintsOneRowPerPoint(t *testing.T) {
	cfg := pipelineConfig(t)
	_, err := generateArrivals(cfg)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runSweep(cfg, []int{2, 8}, nil, []float64{600, 1200}, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "capacity"))
}
