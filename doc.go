// Package grann provides approximate nearest-neighbor search over a
// precomputed fixed-degree proximity graph.
//
// Given a query vector, an Index finds the approximate k closest dataset
// vectors by a bounded best-first traversal: a small sorted frontier of
// candidates is maintained per query, the most promising unvisited nodes are
// expanded through their graph neighbors, and the traversal converges within
// a fixed iteration budget. Searches are deterministic for fixed seeds and
// never allocate on the hot path in the steady state.
//
// # Quick Start
//
//	ds, _ := graph.NewDataset(vectors)
//	g, _ := graph.Build(ctx, ds, 16)
//
//	idx, _ := grann.New(ds, g)
//	neighbors, _ := idx.Search(ctx, query, 10, grann.SearchParams{})
//
// # Recall Tuning
//
// SearchParams zero values are auto-tuned. To trade speed for recall, raise
// ITopK, SearchWidth, or run redundant instances:
//
//	neighbors, _ := idx.Search(ctx, query, 10, grann.SearchParams{
//	    ITopK:       128,
//	    SearchWidth: 4,
//	    Instances:   4,
//	})
//
// # Filtered Search
//
// An admission filter restricts which nodes may appear in results:
//
//	params := grann.SearchParams{Filter: filter.NewDenylist(deleted...)}
//
// Filtered searches may return fewer than k results; that is an expected
// outcome, not an error.
package grann
