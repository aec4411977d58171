package grann

import (
	"fmt"
	"math/bits"

	"github.com/hupe1980/grann/filter"
	"github.com/hupe1980/grann/internal/searcher"
)

// SearchParams tunes one search. The zero value is valid: zero fields are
// replaced by auto-tuned defaults derived from k, the graph degree and the
// dataset size.
type SearchParams struct {
	// ITopK is the size of the internal best-known candidate list. Must be
	// at least k. Larger values improve recall at the cost of search time.
	ITopK int

	// SearchWidth is the number of graph nodes expanded per iteration.
	SearchWidth int

	// MinIterations forces a minimum exploration effort even if the search
	// converges early. MaxIterations bounds the traversal unconditionally.
	MinIterations int
	MaxIterations int

	// HashBits sizes the per-instance visited table at 2^HashBits entries.
	// It must be large enough that the expected number of visited nodes does
	// not overflow the table.
	HashBits int

	// Seeds are explicit entry nodes. When empty, RandomSamples random nodes
	// seed the traversal instead.
	Seeds []uint32

	// RandomSamples is the number of random nodes drawn during initial
	// expansion (in addition to Seeds, if any).
	RandomSamples int

	// Instances is the number of independent redundant searches per query,
	// each with a derived random seed; their results are merged. Higher
	// values trade throughput for recall.
	Instances int

	// Seed drives the random sampling. Fixed seeds give reproducible runs.
	Seed int64

	// Filter is the admission predicate. Nil accepts all nodes.
	Filter filter.Filter
}

// withDefaults fills zero-valued fields with auto-tuned defaults.
func (p SearchParams) withDefaults(k, degree, datasetSize int) SearchParams {
	if p.ITopK == 0 {
		p.ITopK = 64
		if k > p.ITopK {
			p.ITopK = (k + 31) &^ 31
		}
	}

	if p.SearchWidth == 0 {
		p.SearchWidth = 4

		// Shrink until the buffer fits its largest tier.
		if degree > 0 {
			if maxWidth := (searcher.MaxBufferCapacity - p.ITopK) / degree; maxWidth < p.SearchWidth {
				p.SearchWidth = max(maxWidth, 1)
			}
		}
	}

	if p.MaxIterations == 0 {
		p.MaxIterations = max(p.ITopK, p.MinIterations)
	}

	if len(p.Seeds) == 0 && p.RandomSamples == 0 {
		p.RandomSamples = min(p.ITopK, datasetSize)
	}

	if p.HashBits == 0 {
		// Size for <=50% load at the worst-case visit count.
		visits := p.ITopK + p.RandomSamples + p.MaxIterations*p.SearchWidth*max(degree, 1)
		p.HashBits = min(max(bits.Len(uint(2*visits)), 8), 24)
	}

	if p.Instances == 0 {
		p.Instances = 1
	}

	return p
}

// Validate checks the parameter invariants, including the static buffer
// capacity precondition. Called after withDefaults.
func (p SearchParams) Validate(k, degree int) error {
	if k <= 0 {
		return ErrInvalidK
	}

	if p.ITopK < k {
		return fmt.Errorf("%w: itopk %d smaller than k %d", ErrInvalidParams, p.ITopK, k)
	}

	if p.SearchWidth <= 0 {
		return fmt.Errorf("%w: search width must be positive", ErrInvalidParams)
	}

	if p.MinIterations < 0 || p.MinIterations > p.MaxIterations {
		return fmt.Errorf("%w: need 0 <= min iterations (%d) <= max iterations (%d)",
			ErrInvalidParams, p.MinIterations, p.MaxIterations)
	}

	if p.HashBits < 1 || p.HashBits > 30 {
		return fmt.Errorf("%w: hash bits %d out of range [1,30]", ErrInvalidParams, p.HashBits)
	}

	if p.Instances <= 0 {
		return fmt.Errorf("%w: instances must be positive", ErrInvalidParams)
	}

	if capacity, ok := searcher.BufferCapacity(p.ITopK, p.SearchWidth, degree); !ok {
		return &ErrCapacityExceeded{Required: capacity, Max: searcher.MaxBufferCapacity}
	}

	return nil
}
