// Package testutil provides shared helpers for tests and benchmarks:
// a seeded thread-safe RNG, random vector generation, and a brute-force
// reference search for recall measurement.
package testutil

import (
	"math"
	"math/rand"
	"sort"
	"sync"

	"github.com/hupe1980/grann/distance"
)

// SearchResult represents a reference search result.
type SearchResult struct {
	ID       uint32
	Distance float32
}

// RNG encapsulates a seeded random number generator.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // test determinism
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rand.Intn(n)
}

// Float32 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rand.Float32()
}

// UniformVectors generates random vectors with values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num int, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	vectors := make([][]float32, num)

	for i := 0; i < num; i++ {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float32()
		}
		vectors[i] = vec
	}

	return vectors
}

// UnitVectors generates L2-normalized random vectors (on the hypersphere).
func (r *RNG) UnitVectors(num int, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	vectors := make([][]float32, num)

	for i := 0; i < num; i++ {
		vec := data[i*dimensions : (i+1)*dimensions]

		var norm float64
		for j := range vec {
			v := r.rand.NormFloat64()
			vec[j] = float32(v)
			norm += v * v
		}

		if norm == 0 {
			norm = 1
		}

		invNorm := float32(1.0 / math.Sqrt(norm))
		for j := range vec {
			vec[j] *= invNorm
		}

		vectors[i] = vec
	}

	return vectors
}

// BruteForce returns the exact k nearest vectors to query, closest first,
// ties broken by id ascending.
func BruteForce(vectors [][]float32, query []float32, k int, distFn distance.Func) []SearchResult {
	results := make([]SearchResult, 0, len(vectors))

	for i, v := range vectors {
		results = append(results, SearchResult{ID: uint32(i), Distance: distFn(query, v)})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		return results[i].ID < results[j].ID
	})

	if len(results) > k {
		results = results[:k]
	}

	return results
}

// Recall returns the fraction of expected ids present in got.
func Recall(got []uint32, expected []SearchResult) float64 {
	if len(expected) == 0 {
		return 1
	}

	want := make(map[uint32]bool, len(expected))
	for _, r := range expected {
		want[r.ID] = true
	}

	hits := 0
	for _, id := range got {
		if want[id] {
			hits++
		}
	}

	return float64(hits) / float64(len(expected))
}
