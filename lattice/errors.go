package lattice

import "errors"

// Sentinel errors for lattice operations.
var (
	// ErrEmptyBound indicates bound.MaxSum is zero or negative.
	ErrEmptyBound = errors.New("lattice: bound.MaxSum must be positive")

	// ErrNoVertices indicates enumeration produced zero vertices, meaning the
	// bound is too small to contain any valid odd-coordinate triple.
	ErrNoVertices = errors.New("lattice: bound produced no vertices")
)
