// Package report renders dispatch simulation results as text.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/shuttle-sim/sim"
)

const clockLayout = "15:04:05"

// Render writes one block per executed tick followed by the summary statistics.
// Each block lists boardings, then abandonments, or "no one waiting" when the
// tick had neither.
func Render(w io.Writer, res *sim.Result) error {
	bw := bufio.NewWriter(w)

	batches := make(map[int]sim.DispatchBatch, len(res.Batches))
	lastTick := res.Ticks
	for _, b := range res.Batches {
		batches[b.Number] = b
		lastTick = max(lastTick, b.Number)
	}
	abandoned := make(map[int][]sim.Abandonment)
	for _, a := range res.Abandonments {
		abandoned[a.BatchNumber] = append(abandoned[a.BatchNumber], a)
		lastTick = max(lastTick, a.BatchNumber)
	}

	for tick := 1; tick <= lastTick; tick++ {
		fmt.Fprintf(bw, "\nBatch %d:\n", tick)
		b, boarded := batches[tick]
		for _, p := range b.Passengers {
			fmt.Fprintf(bw, "rider %d, arrival time: %s, departure time: %s, waiting time: %ds\n",
				p.PersonID, clock(p.ArrivalInstant), clock(p.DepartureInstant), int64(p.WaitingSeconds))
		}
		for _, a := range abandoned[tick] {
			fmt.Fprintf(bw, "[abandoned] rider %d, arrival time: %s, abandon time: %s, waiting time: %ds\n",
				a.PersonID, clock(a.ArrivalInstant), clock(a.AbandonInstant), int64(a.WaitingSeconds))
		}
		if !boarded && len(abandoned[tick]) == 0 {
			fmt.Fprintln(bw, "no one waiting")
		}
	}

	writeStatistics(bw, res.Summarize())
	return bw.Flush()
}

func writeStatistics(w io.Writer, s sim.Summary) {
	fmt.Fprintln(w, "\nStatistics:")
	fmt.Fprintf(w, "Total run time: %ds (%d batches)\n", s.RunTimeSeconds, s.Batches)
	fmt.Fprintf(w, "Riders served: %d\n", s.Served)
	fmt.Fprintf(w, "Riders abandoned after timeout: %d\n", s.Abandoned)
	fmt.Fprintf(w, "Average waiting time: %ds\n", int64(s.MeanWait))
	fmt.Fprintf(w, "Maximum waiting time: %ds\n", int64(s.MaxWait))
	fmt.Fprintf(w, "Minimum waiting time: %ds\n", int64(s.MinWait))
	fmt.Fprintf(w, "Waiting time p50/p90/p99: %ds / %ds / %ds\n", int64(s.P50Wait), int64(s.P90Wait), int64(s.P99Wait))
	fmt.Fprintf(w, "Maximum queue depth: %d\n", s.MaxQueueDepth)
	fmt.Fprintf(w, "Share of riders waiting over %d minutes: %.2f%%\n",
		int(sim.LongWaitThresholdSeconds/60), s.LongWaitPercent)
}

// Save renders res into the file at path, replacing any existing content.
func Save(path string, res *sim.Result) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing report file: %w", closeErr)
		}
	}()
	if err := Render(file, res); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	logrus.Debugf("Successfully wrote report to '%s'", path)
	return nil
}

// PrintSummary displays the console summary printed at the end of a run.
func PrintSummary(w io.Writer, s sim.Summary) {
	fmt.Fprintln(w, "=== Simulation Summary ===")
	fmt.Fprintf(w, "Arrivals             : %d\n", s.TotalArrivals)
	fmt.Fprintf(w, "Dispatch Ticks       : %d\n", s.Ticks)
	fmt.Fprintf(w, "Batches Run          : %d\n", s.Batches)
	fmt.Fprintf(w, "Riders Served        : %d\n", s.Served)
	fmt.Fprintf(w, "Riders Abandoned     : %d\n", s.Abandoned)
	if s.Served > 0 {
		fmt.Fprintf(w, "Average Wait         : %.2f s\n", s.MeanWait)
		fmt.Fprintf(w, "P99 Wait             : %.2f s\n", s.P99Wait)
	}
	fmt.Fprintf(w, "Max Queue Depth      : %d\n", s.MaxQueueDepth)
}

// PrintSweep writes one line per sweep point, in grid order.
func PrintSweep(w io.Writer, results []sim.SweepResult) {
	fmt.Fprintf(w, "%-10s %-10s %-10s %8s %8s %10s %10s %8s\n",
		"capacity", "period_s", "max_wait_s", "served", "aband", "mean_wait", "p99_wait", "max_q")
	for _, r := range results {
		s := r.Result.Summarize()
		fmt.Fprintf(w, "%-10d %-10d %-10g %8d %8d %10.1f %10.1f %8d\n",
			r.Config.Capacity, r.Config.PeriodSeconds, r.Config.MaxWaitSeconds,
			s.Served, s.Abandoned, s.MeanWait, s.P99Wait, s.MaxQueueDepth)
	}
}

func clock(t time.Time) string {
	return t.Format(clockLayout)
}
