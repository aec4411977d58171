package grann

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrInvalidParams is returned when search parameters violate their
	// invariants (wrapped with the specific reason).
	ErrInvalidParams = errors.New("invalid search parameters")
)

// ErrCapacityExceeded indicates that the candidate buffer required by the
// search parameters exceeds the largest supported capacity tier. This is a
// configuration error: it fails before any traversal begins and is not
// recoverable at runtime.
type ErrCapacityExceeded struct {
	Required int
	Max      int
}

func (e *ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("required buffer capacity %d exceeds maximum %d", e.Required, e.Max)
}

// ErrDimensionMismatch indicates a vector/query dimensionality mismatch.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
