package grann

import (
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/grann/internal/searcher"
)

// Neighbor is one search result: a dataset node and its distance to the
// query. Smaller distance is closer.
type Neighbor struct {
	ID       uint32
	Distance float32
}

// mergeInstances combines the outputs of redundant search instances:
// deduplicate by node id keeping the smallest distance, drop sentinel slots,
// re-truncate to k, sorted by (distance, id) ascending.
func mergeInstances(instances [][]searcher.Candidate, k int, datasetSize int) []Neighbor {
	total := 0
	for _, in := range instances {
		total += len(in)
	}

	all := make([]searcher.Candidate, 0, total)
	for _, in := range instances {
		all = append(all, in...)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Distance != all[j].Distance {
			return all[i].Distance < all[j].Distance
		}
		return all[i].ID < all[j].ID
	})

	seen := bitset.New(uint(datasetSize))
	out := make([]Neighbor, 0, k)

	for _, c := range all {
		if c.ID == searcher.InvalidID {
			break // sentinels sort last; nothing valid follows
		}

		if seen.Test(uint(c.ID)) {
			continue
		}
		seen.Set(uint(c.ID))

		out = append(out, Neighbor{ID: c.ID, Distance: c.Distance})
		if len(out) == k {
			break
		}
	}

	return out
}
