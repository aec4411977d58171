package distance

import (
	"fmt"
	"math"
)

// Func calculates the distance between two vectors of equal length.
// Smaller is closer. Length equality is the caller's responsibility.
type Func func(a, b []float32) float32

// Metric identifies a distance metric.
type Metric int

const (
	// MetricSquaredL2 is the squared Euclidean distance.
	MetricSquaredL2 Metric = iota
	// MetricEuclidean is the Euclidean distance.
	MetricEuclidean
	// MetricInnerProduct is the negated dot product.
	MetricInnerProduct
	// MetricCosine is the cosine distance (1 - cosine similarity).
	MetricCosine
)

// String returns the metric name.
func (m Metric) String() string {
	switch m {
	case MetricSquaredL2:
		return "squared_l2"
	case MetricEuclidean:
		return "euclidean"
	case MetricInnerProduct:
		return "inner_product"
	case MetricCosine:
		return "cosine"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// Func resolves the metric to its distance function.
func (m Metric) Func() (Func, error) {
	switch m {
	case MetricSquaredL2:
		return SquaredL2, nil
	case MetricEuclidean:
		return Euclidean, nil
	case MetricInnerProduct:
		return InnerProduct, nil
	case MetricCosine:
		return Cosine, nil
	default:
		return nil, fmt.Errorf("unknown metric: %d", int(m))
	}
}

// Dot calculates the dot product of two vectors.
func Dot(a, b []float32) float32 {
	var ret float32
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
func SquaredL2(a, b []float32) float32 {
	var dist float32
	for i := range a {
		d := a[i] - b[i]
		dist += d * d
	}

	return dist
}

// Euclidean calculates the L2 (Euclidean) distance between two vectors.
func Euclidean(a, b []float32) float32 {
	return float32(math.Sqrt(float64(SquaredL2(a, b))))
}

// InnerProduct calculates the negated dot product, so that higher similarity
// maps to smaller distance.
func InnerProduct(a, b []float32) float32 {
	return -Dot(a, b)
}

// Cosine calculates the cosine distance (1 - cosine similarity).
// Returns 1 if either vector has zero norm.
func Cosine(a, b []float32) float32 {
	var dot, na, nb float32
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}

	if na == 0 || nb == 0 {
		return 1
	}

	return 1 - dot/float32(math.Sqrt(float64(na)*float64(nb)))
}

// Magnitude calculates the magnitude (length) of a vector.
func Magnitude(v []float32) float32 {
	return float32(math.Sqrt(float64(Dot(v, v))))
}

// NormalizeL2InPlace L2-normalizes v in place.
// Returns false if v has zero L2 norm.
func NormalizeL2InPlace(v []float32) bool {
	norm2 := Dot(v, v)
	if norm2 == 0 {
		return false
	}

	inv := 1 / float32(math.Sqrt(float64(norm2)))
	for i := range v {
		v[i] *= inv
	}

	return true
}
