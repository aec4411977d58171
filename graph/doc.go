// Package graph provides the immutable inputs of a search: the dataset of
// vectors and the fixed-degree proximity graph over it.
//
// Both structures are flat, read-only after construction, and safe for
// concurrent use by any number of searches. Persistence is a single framed
// binary file with selectable compression (see WriteIndex/ReadIndex), and
// Build provides an exact kNN construction for datasets where build time is
// not a concern.
package graph
