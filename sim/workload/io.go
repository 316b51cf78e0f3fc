package workload

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/shuttle-sim/sim"
)

// SaveArrivals writes arrivals as an indented JSON list of
// {"id", "arrival_time", "seconds"} objects.
func SaveArrivals(path string, arrivals []sim.Arrival) error {
	if arrivals == nil {
		arrivals = []sim.Arrival{}
	}
	data, err := json.MarshalIndent(arrivals, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding arrivals: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing arrivals file: %w", err)
	}
	logrus.Debugf("Wrote %d arrivals to %s", len(arrivals), path)
	return nil
}

// LoadArrivals reads a JSON arrival list written by SaveArrivals.
// Unknown keys are rejected.
func LoadArrivals(path string) ([]sim.Arrival, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading arrivals file: %w", err)
	}
	return DecodeArrivals(bytes.NewReader(data))
}

// localTimeLayout matches ISO-8601 timestamps written without a zone offset.
const localTimeLayout = "2006-01-02T15:04:05.999999999"

// arrivalRecord is the on-disk form of an arrival; arrival_time is kept as text
// so timestamps without an offset can be read too.
type arrivalRecord struct {
	ID          int     `json:"id"`
	ArrivalTime string  `json:"arrival_time"`
	Seconds     float64 `json:"seconds"`
}

// parseArrivalTime accepts RFC 3339 and offset-less ISO-8601 timestamps.
// Offset-less timestamps are read in the location of sim.DefaultEpoch.
func parseArrivalTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(localTimeLayout, s, sim.DefaultEpoch.Location())
}

// DecodeArrivals parses a JSON arrival list.
func DecodeArrivals(r io.Reader) ([]sim.Arrival, error) {
	var records []arrivalRecord
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("parsing arrivals: %w", err)
	}
	arrivals := make([]sim.Arrival, 0, len(records))
	for i, rec := range records {
		if rec.ArrivalTime == "" {
			return nil, fmt.Errorf("arrival[%d] (id %d): missing arrival_time", i, rec.ID)
		}
		instant, err := parseArrivalTime(rec.ArrivalTime)
		if err != nil {
			return nil, fmt.Errorf("arrival[%d] (id %d): arrival_time %q is not ISO-8601: %w", i, rec.ID, rec.ArrivalTime, err)
		}
		arrivals = append(arrivals, sim.Arrival{ID: rec.ID, Instant: instant, Seconds: rec.Seconds})
	}
	return arrivals, nil
}

// WriteRoster writes the human-readable arrival list, one rider per line, ordered by ID.
func WriteRoster(w io.Writer, arrivals []sim.Arrival) error {
	ordered := make([]sim.Arrival, len(arrivals))
	copy(ordered, arrivals)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ID < ordered[j].ID
	})

	bw := bufio.NewWriter(w)
	for _, a := range ordered {
		if _, err := fmt.Fprintf(bw, "rider %d, arrival time: %s\n", a.ID, a.Instant.Format("15:04:05")); err != nil {
			return fmt.Errorf("writing roster: %w", err)
		}
	}
	return bw.Flush()
}

// SaveRoster writes the human-readable arrival list to path.
func SaveRoster(path string, arrivals []sim.Arrival) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating roster file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing roster file: %w", closeErr)
		}
	}()
	return WriteRoster(file, arrivals)
}
