package searcher

import (
	"fmt"

	"github.com/hupe1980/grann/graph"
)

// Search runs one bounded best-first traversal and returns the itopk best
// (distance, id) candidates in ascending order plus the number of iterations
// executed. Slots for which no valid neighbor was found carry InvalidID.
//
// The returned slice is freshly allocated; the Searcher may be reused or
// returned to the pool afterwards.
func (s *Searcher) Search(ds *graph.Dataset, g *graph.Graph, query []float32, cfg Config) ([]Candidate, int, error) {
	if len(query) != ds.Dim() {
		return nil, 0, fmt.Errorf("query dimension %d does not match dataset dimension %d", len(query), ds.Dim())
	}

	capacity, ok := BufferCapacity(cfg.ITopK, cfg.SearchWidth, g.Degree())
	if !ok {
		return nil, 0, fmt.Errorf("required buffer capacity %d exceeds maximum %d", capacity, MaxBufferCapacity)
	}

	s.prepare(cfg, capacity, query)
	s.seedBuffer(ds, cfg)

	iterations := 0

	for {
		s.sortTopK()

		if iterations >= cfg.MaxIterations {
			break
		}

		s.pickParents(cfg)

		if s.terminated && iterations >= cfg.MinIterations {
			break
		}

		s.expand(ds, g, cfg)

		iterations++
	}

	if cfg.Accept != nil {
		s.sweepFilter(cfg)
		s.sortTopK()
	}

	out := make([]Candidate, cfg.ITopK)
	for i := range out {
		out[i] = Candidate{Distance: s.buf[i].Distance, ID: s.buf[i].ID}
	}

	return out, iterations, nil
}

// expand reads the adjacency list of every valid parent and scores each
// neighbor not yet in the visited set into the scratch region. Slots for
// invalid parents or already-seen neighbors stay sentinel, so the next sort
// discards them.
func (s *Searcher) expand(ds *graph.Dataset, g *graph.Graph, cfg Config) {
	degree := g.Degree()

	for pi, p := range s.parents {
		base := s.itopk + pi*degree
		dst := s.buf[base : base+degree]

		if p.id == InvalidID {
			for i := range dst {
				dst[i] = sentinel
			}

			continue
		}

		for i, nb := range g.Neighbors(p.id) {
			if s.visited.InsertIfAbsent(nb) {
				dst[i] = Candidate{Distance: cfg.Distance(s.query, ds.Vector(nb)), ID: nb}
			} else {
				dst[i] = sentinel
			}
		}
	}
}

// sweepFilter evicts every remaining buffer entry the admission predicate
// rejects. Runs after the traversal loop; the following sort re-establishes
// the top-k ordering over the filtered set.
func (s *Searcher) sweepFilter(cfg Config) {
	for i := range s.buf {
		if s.buf[i].ID != InvalidID && !cfg.Accept(s.buf[i].ID) {
			s.buf[i] = sentinel
		}
	}
}
