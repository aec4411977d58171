// Package distance provides vector distance calculations for graph traversal.
//
// All functions treat smaller values as "closer". Similarity metrics (dot
// product, cosine) are therefore exposed in negated/complemented form so the
// search core can minimize uniformly.
//
// # Supported Metrics
//
//   - MetricSquaredL2: Squared Euclidean distance (default)
//   - MetricEuclidean: Euclidean distance
//   - MetricInnerProduct: Negated dot product
//   - MetricCosine: Cosine distance (1 - cosine similarity)
//
// # Usage
//
//	dist := distance.SquaredL2(a, b)
//	fn, err := distance.MetricCosine.Func()
package distance
