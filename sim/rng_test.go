package sim

import (
	"math"
	"math/rand"
	"testing"
)

// === SimulationKey Tests ===

func TestSimulationKey_Creation(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"positive seed", 42},
		{"zero seed", 0},
		{"negative seed", -1},
		{"max int64", math.MaxInt64},
		{"min int64", math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewSimulationKey(tt.seed)
			if int64(key) != tt.seed {
				t.Errorf("NewSimulationKey(%d) = %d, want %d", tt.seed, key, tt.seed)
			}
		})
	}
}

// === PartitionedRNG Tests ===

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	// BDD: Same key+name produces same sequence
	rng1 := NewPartitionedRNG(NewSimulationKey(42))
	rng2 := NewPartitionedRNG(NewSimulationKey(42))

	for i := 0; i < 3; i++ {
		v1 := rng1.ForSubsystem(SubsystemHour(3)).Float64()
		v2 := rng2.ForSubsystem(SubsystemHour(3)).Float64()
		if v1 != v2 {
			t.Errorf("Value %d: got %v and %v, want identical", i, v1, v2)
		}
	}
}

func TestPartitionedRNG_SubsystemIsolation(t *testing.T) {
	// BDD: Drawing from hour 0 doesn't affect hour 1
	rngA := NewPartitionedRNG(NewSimulationKey(42))
	for i := 0; i < 10; i++ {
		rngA.ForSubsystem(SubsystemHour(0)).Float64()
	}
	aHourOne := rngA.ForSubsystem(SubsystemHour(1)).Float64()

	fresh := NewPartitionedRNG(NewSimulationKey(42))
	expected := fresh.ForSubsystem(SubsystemHour(1)).Float64()

	if aHourOne != expected {
		t.Errorf("hour 1 first value = %v, want %v (isolation broken)", aHourOne, expected)
	}
}

func TestPartitionedRNG_SeedIsKeyXorNameHash(t *testing.T) {
	// BDD: a stream matches a plain source seeded with key ^ fnv1a64(name)
	seed := int64(42)
	rng := NewPartitionedRNG(NewSimulationKey(seed))
	hourRNG := rng.ForSubsystem(SubsystemHour(0))
	directRNG := rand.New(rand.NewSource(seed ^ fnv1a64("hour_0")))

	for i := 0; i < 10; i++ {
		got := hourRNG.Float64()
		want := directRNG.Float64()
		if got != want {
			t.Errorf("Value %d: hour RNG = %v, direct RNG = %v", i, got, want)
		}
	}
}

func TestPartitionedRNG_DifferentSeeds_DifferentStreams(t *testing.T) {
	a := NewPartitionedRNG(NewSimulationKey(1)).ForSubsystem(SubsystemHour(0)).Float64()
	b := NewPartitionedRNG(NewSimulationKey(2)).ForSubsystem(SubsystemHour(0)).Float64()

	if a == b {
		t.Errorf("seeds 1 and 2 produced the same first value %v", a)
	}
}

func TestPartitionedRNG_CachesInstance(t *testing.T) {
	// BDD: Same name returns same *rand.Rand instance
	rng := NewPartitionedRNG(NewSimulationKey(42))

	if rng.ForSubsystem(SubsystemHour(2)) != rng.ForSubsystem(SubsystemHour(2)) {
		t.Error("ForSubsystem returned different instances for same name")
	}
}

func TestSubsystemHour_Format(t *testing.T) {
	if got := SubsystemHour(7); got != "hour_7" {
		t.Errorf("SubsystemHour(7) = %q, want %q", got, "hour_7")
	}
}
