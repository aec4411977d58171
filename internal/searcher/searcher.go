package searcher

import (
	"math/rand"
	"sync"
)

// parent is one expansion-frontier slot: the selected node and the buffer
// slot it was compacted from.
type parent struct {
	id   uint32
	slot int
}

// Searcher is a reusable execution context for one graph traversal.
// It owns all scratch memory required for search, eliminating heap
// allocations in the steady state.
//
// Searcher is NOT thread-safe. It is intended to be owned by a single
// goroutine for the duration of a traversal.
type Searcher struct {
	// buf is the candidate buffer: [0,itopk) best-known results, sorted
	// ascending after every sortTopK; [itopk, itopk+width*degree) expansion
	// scratch; the remainder of the tier stays sentinel.
	buf   []Candidate
	itopk int

	// parents is the per-iteration expansion frontier.
	parents []parent

	// visited tracks ids already admitted to the frontier.
	visited *VisitedSet

	// query is the searcher-owned copy of the query vector.
	query []float32

	rng *rand.Rand

	// terminated is set when a parent scan finds zero unvisited candidates.
	terminated bool
}

var searcherPool = sync.Pool{
	New: func() any {
		return &Searcher{
			buf:     make([]Candidate, MaxBufferCapacity),
			parents: make([]parent, 0, 8),
			rng:     rand.New(rand.NewSource(1)), //nolint:gosec // reproducible sampling, not crypto
		}
	},
}

// Get returns a Searcher from the pool.
func Get() *Searcher {
	return searcherPool.Get().(*Searcher)
}

// Put returns a Searcher to the pool.
func Put(s *Searcher) {
	searcherPool.Put(s)
}

// prepare sizes the scratch state for a traversal and resets it.
func (s *Searcher) prepare(cfg Config, capacity int, query []float32) {
	if cap(s.buf) < capacity {
		s.buf = make([]Candidate, capacity)
	} else {
		s.buf = s.buf[:capacity]
	}

	s.itopk = cfg.ITopK
	s.resetBuffer()

	if cap(s.parents) < cfg.SearchWidth {
		s.parents = make([]parent, cfg.SearchWidth)
	} else {
		s.parents = s.parents[:cfg.SearchWidth]
	}

	if s.visited == nil || s.visited.Bits() != cfg.HashBits {
		s.visited = NewVisitedSet(cfg.HashBits)
	} else {
		s.visited.Reset()
	}

	if cap(s.query) < len(query) {
		s.query = make([]float32, len(query))
	} else {
		s.query = s.query[:len(query)]
	}
	copy(s.query, query)

	s.rng.Seed(cfg.Seed)
	s.terminated = false
}
