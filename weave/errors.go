package weave

import (
	"errors"
	"fmt"
)

// Sentinel errors for the weave package. Each names a distinct detected
// failure mode (spec §7); none are retried, and all are fatal at the core's
// boundary.
var (
	// ErrMalformedInput indicates the adjacency is asymmetric, the vi-map is
	// inconsistent with the vertex table, or a vertex is off the expected
	// lattice.
	ErrMalformedInput = errors.New("weave: malformed input")

	// ErrNoCandidate indicates the spinner found no admissible next vertex
	// (a precondition violation: the slab adjacency is disconnected or
	// otherwise unsuitable for a Hamiltonian path).
	ErrNoCandidate = errors.New("weave: no admissible next vertex")

	// ErrEmptyLoom indicates the stitcher was invoked with no cycles.
	ErrEmptyLoom = errors.New("weave: empty loom")

	// ErrUnjoinableCycles indicates the stitcher could not find an
	// adjacent-edge pair between the main cycle and an "other" cycle. Under
	// the construction in loom.go/reflect.go this should never happen; its
	// occurrence signals a bug upstream, not a recoverable input error.
	ErrUnjoinableCycles = errors.New("weave: no adjacent edge pair to join cycles")
)

// DetailedError wraps a sentinel with the offending vertex or edge, so
// callers can still use errors.Is against the sentinel while getting a
// useful diagnostic message at the boundary.
type DetailedError struct {
	Err    error
	Detail string
}

func (e *DetailedError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Detail)
}

func (e *DetailedError) Unwrap() error { return e.Err }

// detailf builds a DetailedError from a sentinel and a formatted detail.
func detailf(sentinel error, format string, args ...interface{}) error {
	return &DetailedError{Err: sentinel, Detail: fmt.Sprintf(format, args...)}
}
