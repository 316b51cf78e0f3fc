package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/shuttle-sim/sim/workload"
)

var (
	seed       int64  // Seed for arrival sampling
	rosterFile string // Human-readable arrival list
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Sample arrival times from the hourly arrival table",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfigWithOverrides(cmd)
		if cmd.Flags().Changed("seed") {
			cfg.Seed = &seed
		}
		if cmd.Flags().Changed("roster") {
			cfg.RosterFile = rosterFile
		}
		n, err := generateArrivals(cfg)
		if err != nil {
			logrus.Fatalf("Arrival generation failed: %v", err)
		}
		fmt.Printf("Generated %d arrivals\n", n)
		fmt.Printf("  %s (data)\n", cfg.ArrivalsFile)
		fmt.Printf("  %s (roster)\n", cfg.RosterFile)
	},
}

// generateArrivals samples arrivals and writes both the JSON list and the roster.
func generateArrivals(cfg *RunConfig) (int, error) {
	spec, err := cfg.ArrivalSpec()
	if err != nil {
		return 0, fmt.Errorf("invalid arrival config: %w", err)
	}
	arrivals, err := workload.GenerateArrivals(spec)
	if err != nil {
		return 0, err
	}
	if err := workload.SaveArrivals(cfg.ArrivalsFile, arrivals); err != nil {
		return 0, err
	}
	if err := workload.SaveRoster(cfg.RosterFile, arrivals); err != nil {
		return 0, err
	}
	logrus.Infof("Wrote %d arrivals to %s and %s", len(arrivals), cfg.ArrivalsFile, cfg.RosterFile)
	return len(arrivals), nil
}

func init() {
	generateCmd.Flags().Int64Var(&seed, "seed", defaultSeed, "Seed for arrival sampling (overrides config)")
	generateCmd.Flags().StringVar(&arrivalsFile, "arrivals", defaultArrivalsFile, "Arrival JSON output path (overrides config)")
	generateCmd.Flags().StringVar(&rosterFile, "roster", "", "Roster text output path (defaults to the arrivals path with .txt)")
}
