package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/shuttle-sim/sim"
	"github.com/inference-sim/shuttle-sim/sim/workload"
)

// Defaults for the pipeline files.
const (
	defaultOutputFile   = "result.txt"
	defaultArrivalsFile = "arrivals.json"
	defaultSeed         = int64(42)
)

// RunConfig represents the input.yaml structure shared by every subcommand.
// JSON input is accepted too, since JSON is a subset of YAML.
type RunConfig struct {
	Capacity              int     `yaml:"capacity"`
	DispatchPeriodSeconds int64   `yaml:"dispatch_period_seconds"`
	MaxWaitSeconds        float64 `yaml:"max_wait_seconds"`
	OutputFile            string  `yaml:"output_file"`
	ArrivalsFile          string  `yaml:"arrivals_file"`
	RosterFile            string  `yaml:"roster_file"`
	Epoch                 string  `yaml:"epoch"` // RFC 3339; empty means 2024-01-01T00:00:00Z
	Seed                  *int64  `yaml:"seed"`
	Process               string  `yaml:"process"`
	HourlyArrivals        []int   `yaml:"hourly_arrivals"`
}

// LoadRunConfig parses a config file with strict field checking (typos must cause errors)
// and fills in defaults for omitted fields.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg RunConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *RunConfig) applyDefaults() {
	if c.DispatchPeriodSeconds == 0 {
		c.DispatchPeriodSeconds = sim.DefaultPeriodSeconds
	}
	if c.MaxWaitSeconds == 0 {
		c.MaxWaitSeconds = sim.DefaultMaxWaitSeconds
	}
	if c.OutputFile == "" {
		c.OutputFile = defaultOutputFile
	}
	if c.ArrivalsFile == "" {
		c.ArrivalsFile = defaultArrivalsFile
	}
	if c.RosterFile == "" {
		c.RosterFile = rosterPathFor(c.ArrivalsFile)
	}
	if c.Seed == nil {
		seed := defaultSeed
		c.Seed = &seed
	}
}

// rosterPathFor places the human-readable roster next to the arrivals file.
func rosterPathFor(arrivalsFile string) string {
	ext := filepath.Ext(arrivalsFile)
	return strings.TrimSuffix(arrivalsFile, ext) + ".txt"
}

func (c *RunConfig) epoch() (time.Time, error) {
	if c.Epoch == "" {
		return sim.DefaultEpoch, nil
	}
	t, err := time.Parse(time.RFC3339, c.Epoch)
	if err != nil {
		return time.Time{}, fmt.Errorf("epoch %q must be RFC 3339: %w", c.Epoch, err)
	}
	return t, nil
}

// DispatchConfig builds and validates the simulator config.
func (c *RunConfig) DispatchConfig() (sim.DispatchConfig, error) {
	epoch, err := c.epoch()
	if err != nil {
		return sim.DispatchConfig{}, err
	}
	dc := sim.DispatchConfig{
		Capacity:       c.Capacity,
		PeriodSeconds:  c.DispatchPeriodSeconds,
		MaxWaitSeconds: c.MaxWaitSeconds,
		Epoch:          epoch,
	}
	if err := dc.Validate(); err != nil {
		return sim.DispatchConfig{}, err
	}
	return dc, nil
}

// ArrivalSpec builds and validates the arrival-generation spec.
func (c *RunConfig) ArrivalSpec() (*workload.ArrivalSpec, error) {
	epoch, err := c.epoch()
	if err != nil {
		return nil, err
	}
	if len(c.HourlyArrivals) == 0 {
		return nil, fmt.Errorf("hourly_arrivals must list at least one hour")
	}
	spec := &workload.ArrivalSpec{
		Epoch:          epoch,
		Process:        c.Process,
		HourlyArrivals: c.HourlyArrivals,
	}
	if c.Seed != nil {
		spec.Seed = *c.Seed
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}
