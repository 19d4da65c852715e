package tourcheck

import "errors"

// Sentinel errors for tourcheck operations.
var (
	// ErrWrongLength indicates the tour's length does not match the expected
	// vertex count.
	ErrWrongLength = errors.New("tourcheck: tour length does not match vertex count")

	// ErrDuplicateVertex indicates some vertex id appears more than once in
	// the tour, or lies outside [0, n).
	ErrDuplicateVertex = errors.New("tourcheck: tour revisits a vertex")

	// ErrNotAnEdge indicates two consecutive tour entries are not linked by a
	// valid lattice edge present in the adjacency table.
	ErrNotAnEdge = errors.New("tourcheck: consecutive tour vertices are not adjacent")
)
