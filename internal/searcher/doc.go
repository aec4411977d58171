// Package searcher implements the per-query graph traversal: a bounded
// best-first search over a fixed-degree proximity graph.
//
// Each Searcher owns all scratch memory required for one traversal:
//   - Candidate buffer (fixed tier capacity, sorted via a bitonic network)
//   - Visited hash set (open addressing, insert-if-absent)
//   - Parent list (the per-iteration expansion frontier)
//
// Searchers are pooled for reuse across queries and are NOT safe for
// concurrent use; every traversal is owned by a single goroutine. Redundant
// searches of the same query run on independent Searchers.
package searcher
