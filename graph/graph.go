package graph

import (
	"fmt"
)

// Dataset is an immutable, row-major collection of fixed-dimension vectors.
// Vector i occupies data[i*dim : (i+1)*dim].
type Dataset struct {
	data []float32
	dim  int
	n    int
}

// NewDataset creates a dataset from individual vectors.
// All vectors must share the same dimensionality.
func NewDataset(vectors [][]float32) (*Dataset, error) {
	if len(vectors) == 0 {
		return nil, fmt.Errorf("dataset must not be empty")
	}

	dim := len(vectors[0])
	if dim == 0 {
		return nil, fmt.Errorf("vector dimension must be positive")
	}

	data := make([]float32, 0, len(vectors)*dim)

	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("vector %d: dimension mismatch: expected %d, got %d", i, dim, len(v))
		}
		data = append(data, v...)
	}

	return &Dataset{data: data, dim: dim, n: len(vectors)}, nil
}

// NewDatasetFlat creates a dataset over an existing row-major buffer.
// The buffer is used as-is and must not be mutated afterwards.
func NewDatasetFlat(data []float32, dim int) (*Dataset, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("vector dimension must be positive")
	}

	if len(data) == 0 || len(data)%dim != 0 {
		return nil, fmt.Errorf("flat data length %d is not a positive multiple of dim %d", len(data), dim)
	}

	return &Dataset{data: data, dim: dim, n: len(data) / dim}, nil
}

// Vector returns the vector at index i. The returned slice aliases the
// dataset's backing array and must be treated as read-only.
func (d *Dataset) Vector(i uint32) []float32 {
	off := int(i) * d.dim
	return d.data[off : off+d.dim : off+d.dim]
}

// Len returns the number of vectors.
func (d *Dataset) Len() int { return d.n }

// Dim returns the vector dimensionality.
func (d *Dataset) Dim() int { return d.dim }

// Graph is an immutable proximity graph with a fixed out-degree per node.
// The neighbor list of node i occupies adj[i*degree : (i+1)*degree].
type Graph struct {
	adj    []uint32
	degree int
	n      int
}

// NewGraph creates a graph from per-node neighbor lists.
// Every list must have exactly the same length (the out-degree).
func NewGraph(neighbors [][]uint32) (*Graph, error) {
	if len(neighbors) == 0 {
		return nil, fmt.Errorf("graph must not be empty")
	}

	degree := len(neighbors[0])
	adj := make([]uint32, 0, len(neighbors)*degree)

	for i, ns := range neighbors {
		if len(ns) != degree {
			return nil, fmt.Errorf("node %d: degree mismatch: expected %d, got %d", i, degree, len(ns))
		}

		for _, id := range ns {
			if int(id) >= len(neighbors) {
				return nil, fmt.Errorf("node %d: neighbor id %d out of range [0,%d)", i, id, len(neighbors))
			}
		}

		adj = append(adj, ns...)
	}

	return &Graph{adj: adj, degree: degree, n: len(neighbors)}, nil
}

// NewGraphFlat creates a graph over an existing flat adjacency buffer.
// The buffer is used as-is and must not be mutated afterwards.
func NewGraphFlat(adj []uint32, n, degree int) (*Graph, error) {
	if n <= 0 || degree < 0 {
		return nil, fmt.Errorf("invalid graph shape: n=%d degree=%d", n, degree)
	}

	if len(adj) != n*degree {
		return nil, fmt.Errorf("flat adjacency length %d does not match n*degree=%d", len(adj), n*degree)
	}

	for i, id := range adj {
		if int(id) >= n {
			return nil, fmt.Errorf("slot %d: neighbor id %d out of range [0,%d)", i, id, n)
		}
	}

	return &Graph{adj: adj, degree: degree, n: n}, nil
}

// Neighbors returns the fixed-degree neighbor list of node i. The returned
// slice aliases the graph's backing array and must be treated as read-only.
func (g *Graph) Neighbors(i uint32) []uint32 {
	off := int(i) * g.degree
	return g.adj[off : off+g.degree : off+g.degree]
}

// Degree returns the fixed out-degree.
func (g *Graph) Degree() int { return g.degree }

// Len returns the number of nodes.
func (g *Graph) Len() int { return g.n }
