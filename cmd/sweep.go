package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tiendc/go-deepcopy"

	"github.com/inference-sim/shuttle-sim/sim"
	"github.com/inference-sim/shuttle-sim/sim/report"
	"github.com/inference-sim/shuttle-sim/sim/workload"
)

var (
	sweepCapacities []int
	sweepPeriods    []int64
	sweepMaxWaits   []float64
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run the simulation over a grid of capacities, periods and wait tolerances",
	Long:  "Runs one simulation per grid point over the same arrival file, concurrently. Axes left unset use the config value.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfigWithOverrides(cmd)
		if err := runSweep(cfg, sweepCapacities, sweepPeriods, sweepMaxWaits, os.Stdout); err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}
	},
}

// sweepPoints expands the axes into one RunConfig per combination.
// Each point is a deep copy of base, so it owns its Seed pointer and
// HourlyArrivals slice and can be edited without touching base or its siblings.
func sweepPoints(base *RunConfig, capacities []int, periods []int64, maxWaits []float64) ([]*RunConfig, error) {
	if len(capacities) == 0 {
		capacities = []int{base.Capacity}
	}
	if len(periods) == 0 {
		periods = []int64{base.DispatchPeriodSeconds}
	}
	if len(maxWaits) == 0 {
		maxWaits = []float64{base.MaxWaitSeconds}
	}

	points := make([]*RunConfig, 0, len(capacities)*len(periods)*len(maxWaits))
	for _, c := range capacities {
		for _, p := range periods {
			for _, mw := range maxWaits {
				point := new(RunConfig)
				if err := deepcopy.Copy(point, base); err != nil {
					return nil, fmt.Errorf("copying base config: %w", err)
				}
				point.Capacity = c
				point.DispatchPeriodSeconds = p
				point.MaxWaitSeconds = mw
				points = append(points, point)
			}
		}
	}
	return points, nil
}

// sweepGrid builds the validated DispatchConfig of every sweep point.
func sweepGrid(base *RunConfig, capacities []int, periods []int64, maxWaits []float64) ([]sim.DispatchConfig, error) {
	points, err := sweepPoints(base, capacities, periods, maxWaits)
	if err != nil {
		return nil, err
	}
	grid := make([]sim.DispatchConfig, 0, len(points))
	for _, point := range points {
		dc, err := point.DispatchConfig()
		if err != nil {
			return nil, fmt.Errorf("grid point capacity=%d period=%d max-wait=%g: %w",
				point.Capacity, point.DispatchPeriodSeconds, point.MaxWaitSeconds, err)
		}
		grid = append(grid, dc)
	}
	return grid, nil
}

func runSweep(cfg *RunConfig, capacities []int, periods []int64, maxWaits []float64, w io.Writer) error {
	grid, err := sweepGrid(cfg, capacities, periods, maxWaits)
	if err != nil {
		return err
	}
	arrivals, err := workload.LoadArrivals(cfg.ArrivalsFile)
	if err != nil {
		return err
	}
	logrus.Infof("Sweeping %d configurations over %d arrivals", len(grid), len(arrivals))

	results, err := sim.Sweep(arrivals, grid)
	if err != nil {
		return err
	}
	report.PrintSweep(w, results)
	return nil
}

func init() {
	sweepCmd.Flags().IntSliceVar(&sweepCapacities, "capacities", nil, "Comma-separated capacities to sweep")
	sweepCmd.Flags().Int64SliceVar(&sweepPeriods, "periods", nil, "Comma-separated dispatch periods (seconds) to sweep")
	sweepCmd.Flags().Float64SliceVar(&sweepMaxWaits, "max-waits", nil, "Comma-separated wait tolerances (seconds) to sweep")
	sweepCmd.Flags().StringVar(&arrivalsFile, "arrivals", defaultArrivalsFile, "Arrival JSON input path (overrides config)")
}
