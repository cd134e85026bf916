package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation run.
// Two runs with the same SimulationKey and identical parameters
// MUST produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemShocks is the RNG subsystem feeding the yearly shock draws of a
	// single run. Uses master seed directly so --seed maps to one stream.
	SubsystemShocks = "shocks"
)

// SubsystemTrial returns the subsystem name for Monte Carlo trial N.
func SubsystemTrial(id int) string {
	return fmt.Sprintf("trial_%d", id)
}

// DeriveSeed returns the seed of the named subsystem under key.
//
// Derivation formula:
//   - For SubsystemShocks: uses the master seed directly
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
func DeriveSeed(key SimulationKey, name string) int64 {
	if name == SubsystemShocks {
		return int64(key)
	}
	return int64(key) ^ fnv1a64(name)
}

// NewTrialRNG returns a fresh generator for Monte Carlo trial id.
// Every call allocates a new *rand.Rand, so concurrent trials never share state.
func NewTrialRNG(key SimulationKey, id int) *rand.Rand {
	return rand.New(rand.NewSource(DeriveSeed(key, SubsystemTrial(id))))
}

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
// Parallel trial pools use NewTrialRNG instead.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(DeriveSeed(p.key, name)))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
