package workload

import (
	"math/rand"
	"sort"
)

// OffsetSampler places n arrivals inside one hour.
type OffsetSampler interface {
	// SampleOffsets returns n offsets in [0, SecondsPerHour), sorted ascending.
	SampleOffsets(rng *rand.Rand, n int) []float64
}

// UniformSampler draws each offset independently and uniformly over the hour.
type UniformSampler struct{}

func (UniformSampler) SampleOffsets(rng *rand.Rand, n int) []float64 {
	offsets := make([]float64, n)
	for i := range offsets {
		offsets[i] = rng.Float64() * SecondsPerHour
	}
	sort.Float64s(offsets)
	return offsets
}

// ConstantSampler spaces arrivals evenly across the hour, starting at offset 0.
// It ignores the RNG, which makes it useful for reproducible hand-checked runs.
type ConstantSampler struct{}

func (ConstantSampler) SampleOffsets(_ *rand.Rand, n int) []float64 {
	offsets := make([]float64, n)
	if n == 0 {
		return offsets
	}
	step := float64(SecondsPerHour) / float64(n)
	for i := range offsets {
		offsets[i] = float64(i) * step
	}
	return offsets
}

// NewOffsetSampler creates an OffsetSampler for a process name.
func NewOffsetSampler(process string) OffsetSampler {
	switch process {
	case "constant":
		return ConstantSampler{}
	default:
		// Validated before reaching here; "" and "uniform" both land here.
		return UniformSampler{}
	}
}
