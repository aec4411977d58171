package searcher

import "github.com/hupe1980/grann/graph"

// seedBuffer performs the initial expansion: explicit seed nodes first, then
// repeated random re-sampling for diversity. Every admitted node is scored
// against the query and registered in the visited set, so it is never
// re-discovered during expansion.
func (s *Searcher) seedBuffer(ds *graph.Dataset, cfg Config) {
	n := 0

	for _, id := range cfg.Seeds {
		if n >= len(s.buf) {
			return
		}

		if int(id) >= ds.Len() {
			continue
		}

		if s.visited.InsertIfAbsent(id) {
			s.buf[n] = Candidate{Distance: cfg.Distance(s.query, ds.Vector(id)), ID: id}
			n++
		}
	}

	want := cfg.RandomSamples
	if want > len(s.buf)-n {
		want = len(s.buf) - n
	}

	// Over-draw by a bounded factor so collisions with seeds or earlier draws
	// are retried without risking an unbounded loop on tiny datasets.
	attempts := 10 * want

	for drawn := 0; drawn < want && attempts > 0; attempts-- {
		id := uint32(s.rng.Intn(ds.Len()))

		if s.visited.InsertIfAbsent(id) {
			s.buf[n] = Candidate{Distance: cfg.Distance(s.query, ds.Vector(id)), ID: id}
			n++
			drawn++
		}
	}
}
