package searcher

// pickParents scans the sorted best-known region closest-first and compacts
// up to SearchWidth unvisited entries into the parent list, marking each one
// visited in place. Entries rejected by the admission predicate are evicted
// (set to sentinel) instead of selected, so a rejected node is never
// expanded and never pollutes future top-k results.
//
// Unused parent slots are padded with InvalidID. The termination flag is set
// iff the scan found zero unvisited candidates.
func (s *Searcher) pickParents(cfg Config) int {
	found := 0
	sawUnvisited := false

	for i := 0; i < s.itopk && found < len(s.parents); i++ {
		c := &s.buf[i]

		if c.Visited || c.ID == InvalidID {
			continue
		}

		sawUnvisited = true

		if cfg.Accept != nil && !cfg.Accept(c.ID) {
			*c = sentinel
			continue
		}

		c.Visited = true
		s.parents[found] = parent{id: c.ID, slot: i}
		found++
	}

	for i := found; i < len(s.parents); i++ {
		s.parents[i] = parent{id: InvalidID}
	}

	s.terminated = !sawUnvisited

	return found
}
