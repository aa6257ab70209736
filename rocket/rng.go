package rocket

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// === SearchKey ===

// SearchKey uniquely identifies a reproducible search run. Two runs with the
// same SearchKey and identical configuration MUST produce identical
// candidate streams and identical best rockets.
type SearchKey int64

// NewSearchKey creates a SearchKey from a seed value.
func NewSearchKey(seed int64) SearchKey {
	return SearchKey(seed)
}

// SubsystemWorker returns the RNG subsystem name for search worker N. Each
// worker draws from its own stream so worker count never changes what any
// single worker samples.
func SubsystemWorker(id int) string {
	return fmt.Sprintf("worker_%d", id)
}

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per
// subsystem. Each subsystem's stream is seeded with
// masterSeed XOR fnv1a64(subsystemName), so adding a consumer never
// perturbs the draws of existing ones.
//
// Thread-safety: NOT thread-safe. Derive all subsystem streams from a
// single goroutine before handing them out.
type PartitionedRNG struct {
	key        SearchKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SearchKey.
func NewPartitionedRNG(key SearchKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named
// subsystem. The same subsystem name always returns the same *rand.Rand
// instance (cached). Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(int64(p.key) ^ fnv1a64(name)))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SearchKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SearchKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
