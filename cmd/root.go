package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel   string // Log verbosity level
	configPath string // Path to input.yaml

	// Overrides shared by run and sweep; applied only when the flag is set.
	capacity     int     // Max riders per dispatch
	periodSecs   int64   // Seconds between dispatch ticks
	maxWaitSecs  float64 // Wait tolerance before a rider abandons
	arrivalsFile string  // Arrival JSON produced by generate
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "shuttle-sim",
	Short: "Periodic-dispatch elevator simulator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfigWithOverrides reads the config file and applies any flags the user set.
func loadConfigWithOverrides(cmd *cobra.Command) *RunConfig {
	cfg, err := LoadRunConfig(configPath)
	if err != nil {
		logrus.Fatalf("Unable to load config: %v", err)
	}
	flags := cmd.Flags()
	if flags.Changed("capacity") {
		cfg.Capacity = capacity
	}
	if flags.Changed("period") {
		cfg.DispatchPeriodSeconds = periodSecs
	}
	if flags.Changed("max-wait") {
		cfg.MaxWaitSeconds = maxWaitSecs
	}
	if flags.Changed("arrivals") {
		cfg.ArrivalsFile = arrivalsFile
		if !flags.Changed("roster") {
			cfg.RosterFile = rosterPathFor(arrivalsFile)
		}
	}
	return cfg
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "input.yaml", "Path to the YAML (or JSON) pipeline config")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
}
