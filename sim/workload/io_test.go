package workload

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/shuttle-sim/sim"
)

func seconds(arrivals []sim.Arrival) []float64 {
	out := make([]float64, len(arrivals))
	for i, a := range arrivals {
		out[i] = a.Seconds
	}
	return out
}

func TestSaveLoadArrivals_PreservesRecords(t *testing.T) {
	// GIVEN generated arrivals saved to disk
	arrivals, err := GenerateArrivals(&ArrivalSpec{Seed: 5, HourlyArrivals: []int{6, 4}})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "arrivals.json")
	require.NoError(t, SaveArrivals(path, arrivals))

	// WHEN loaded back
	loaded, err := LoadArrivals(path)
	require.NoError(t, err)

	// THEN ids, offsets and instants survive
	require.Len(t, loaded, len(arrivals))
	for i := range arrivals {
		assert.Equal(t, arrivals[i].ID, loaded[i].ID)
		assert.Equal(t, arrivals[i].Seconds, loaded[i].Seconds)
		assert.True(t, arrivals[i].Instant.Equal(loaded[i].Instant))
	}
}

func TestSaveArrivals_Nil_WritesEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arrivals.json")
	require.NoError(t, SaveArrivals(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestDecodeArrivals_UnknownField_Rejected(t *testing.T) {
	input := `[{"id": 1, "arrival_time": "2024-01-01T00:00:10Z", "seconds": 10, "floor": 3}]`

	_, err := DecodeArrivals(strings.NewReader(input))

	assert.Error(t, err)
}

func TestDecodeArrivals_MissingTime_Rejected(t *testing.T) {
	input := `[{"id": 1, "seconds": 10}]`

	_, err := DecodeArrivals(strings.NewReader(input))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "arrival_time")
}

func TestDecodeArrivals_TimestampWithoutOffset_ReadAsUTC(t *testing.T) {
	// GIVEN an ISO-8601 timestamp with microseconds and no zone offset
	input := `[{"id": 1, "arrival_time": "2024-01-01T00:12:34.567890", "seconds": 754.56789}]`

	// WHEN decoded
	arrivals, err := DecodeArrivals(strings.NewReader(input))

	// THEN it is accepted and placed in UTC
	require.NoError(t, err)
	require.Len(t, arrivals, 1)
	want := time.Date(2024, 1, 1, 0, 12, 34, 567890000, time.UTC)
	assert.True(t, want.Equal(arrivals[0].Instant), "got %v", arrivals[0].Instant)
	assert.Equal(t, 754.56789, arrivals[0].Seconds)
}

func TestDecodeArrivals_TimestampWithOffset_Kept(t *testing.T) {
	input := `[{"id": 4, "arrival_time": "2024-01-01T02:00:00+02:00", "seconds": 0}]`

	arrivals, err := DecodeArrivals(strings.NewReader(input))

	require.NoError(t, err)
	assert.True(t, sim.DefaultEpoch.Equal(arrivals[0].Instant))
}

func TestDecodeArrivals_BadTimestamp_Rejected(t *testing.T) {
	input := `[{"id": 2, "arrival_time": "yesterday", "seconds": 0}]`

	_, err := DecodeArrivals(strings.NewReader(input))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ISO-8601")
}

func TestDecodeArrivals_Malformed_Rejected(t *testing.T) {
	_, err := DecodeArrivals(strings.NewReader(`{"id": 1}`))
	assert.Error(t, err)
}

func TestLoadArrivals_MissingFile_ReturnsError(t *testing.T) {
	_, err := LoadArrivals(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestWriteRoster_OrderedByID(t *testing.T) {
	// GIVEN arrivals listed out of ID order
	arrivals := []sim.Arrival{
		sim.NewArrival(2, sim.DefaultEpoch, 3725),
		sim.NewArrival(1, sim.DefaultEpoch, 59),
	}

	// WHEN the roster is written
	var buf bytes.Buffer
	require.NoError(t, WriteRoster(&buf, arrivals))

	// THEN lines follow ID order with HH:MM:SS times
	want := "rider 1, arrival time: 00:00:59\nrider 2, arrival time: 01:02:05\n"
	assert.Equal(t, want, buf.String())
}
