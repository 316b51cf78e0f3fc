package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/shuttle-sim/sim"
	"github.com/inference-sim/shuttle-sim/sim/report"
	"github.com/inference-sim/shuttle-sim/sim/trace"
	"github.com/inference-sim/shuttle-sim/sim/workload"
)

var (
	outputFile string // Report output path
	traceLevel string // Tick trace verbosity
)

// runCmd executes the simulation using the config file and CLI overrides
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the dispatch simulation over a generated arrival file",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfigWithOverrides(cmd)
		if cmd.Flags().Changed("output") {
			cfg.OutputFile = outputFile
		}
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level %q; valid: none, ticks", traceLevel)
		}

		startTime := time.Now()
		if err := runSimulation(cfg, trace.TraceLevel(traceLevel), os.Stdout); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Infof("Simulation complete in %v.", time.Since(startTime))
	},
}

// runSimulation loads arrivals, simulates, writes the report file and prints
// the console summary to w. Nothing is written if any earlier stage fails.
func runSimulation(cfg *RunConfig, level trace.TraceLevel, w io.Writer) error {
	dc, err := cfg.DispatchConfig()
	if err != nil {
		return fmt.Errorf("invalid dispatch config: %w", err)
	}
	arrivals, err := workload.LoadArrivals(cfg.ArrivalsFile)
	if err != nil {
		return err
	}
	logrus.Infof("Loaded %d arrivals from %s", len(arrivals), cfg.ArrivalsFile)
	logrus.Infof("Capacity %d riders, period %ds, max wait %.0fs, output %s",
		dc.Capacity, dc.PeriodSeconds, dc.MaxWaitSeconds, cfg.OutputFile)

	s, err := sim.NewSimulator(arrivals, dc)
	if err != nil {
		return err
	}
	s.Trace = trace.NewSimulationTrace(level)
	res := s.Run()

	if err := report.Save(cfg.OutputFile, res); err != nil {
		return err
	}

	report.PrintSummary(w, res.Summarize())
	if s.Trace != nil {
		ts := trace.Summarize(s.Trace)
		fmt.Fprintf(w, "Busy / Abandon-only / Idle Ticks : %d / %d / %d\n", ts.BusyTicks, ts.AbandonOnly, ts.IdleTicks)
		fmt.Fprintf(w, "Full Ticks           : %d\n", ts.FullTicks)
		fmt.Fprintf(w, "Mean Queue Depth     : %.2f\n", ts.MeanQueueDepth)
	}
	fmt.Fprintf(w, "Report written to %s\n", cfg.OutputFile)
	return nil
}

func init() {
	runCmd.Flags().IntVar(&capacity, "capacity", 0, "Max riders per dispatch (overrides config)")
	runCmd.Flags().Int64Var(&periodSecs, "period", sim.DefaultPeriodSeconds, "Seconds between dispatches (overrides config)")
	runCmd.Flags().Float64Var(&maxWaitSecs, "max-wait", sim.DefaultMaxWaitSeconds, "Seconds a rider waits before abandoning (overrides config)")
	runCmd.Flags().StringVar(&arrivalsFile, "arrivals", defaultArrivalsFile, "Arrival JSON input path (overrides config)")
	runCmd.Flags().StringVar(&outputFile, "output", defaultOutputFile, "Report output path (overrides config)")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", string(trace.TraceLevelNone), "Tick trace level (none, ticks)")
}
