package tourcheck

import (
	"github.com/katalvlaran/hexweave/weave"
)

// CheckPermutation verifies that tour is a permutation of [0..n-1] of
// length n, generalizing tsp.ValidatePermutation's boolean-marker scan to a
// cyclic tour with no fixed start position.
//
// Complexity: O(n) time, O(n) space.
func CheckPermutation(tour []int, n int) error {
	if len(tour) != n {
		return &weave.DetailedError{Err: ErrWrongLength, Detail: sprintLen(len(tour), n)}
	}

	seen := make([]bool, n)
	for _, v := range tour {
		if v < 0 || v >= n {
			return &weave.DetailedError{Err: ErrDuplicateVertex, Detail: sprintOutOfRange(v, n)}
		}
		if seen[v] {
			return &weave.DetailedError{Err: ErrDuplicateVertex, Detail: sprintVertex(v)}
		}
		seen[v] = true
	}
	return nil
}

// CheckSteps verifies every consecutive pair in tour, including the
// wraparound pair (tour[n-1], tour[0]), is both present in adj and a
// geometrically valid lattice edge per weave.IsValidEdge.
//
// Complexity: O(n) time.
func CheckSteps(tour []int, adj weave.Adjacency, verts weave.Verts) error {
	n := len(tour)
	if n == 0 {
		return nil
	}
	for i := 0; i < n; i++ {
		a, b := tour[i], tour[(i+1)%n]
		if a < 0 || a >= len(verts) || b < 0 || b >= len(verts) {
			return &weave.DetailedError{Err: ErrNotAnEdge, Detail: sprintStep(i, a, b)}
		}
		if _, ok := adj[a][b]; !ok {
			return &weave.DetailedError{Err: ErrNotAnEdge, Detail: sprintStep(i, a, b)}
		}
		if !weave.IsValidEdge(verts[a], verts[b]) {
			return &weave.DetailedError{Err: ErrNotAnEdge, Detail: sprintStep(i, a, b)}
		}
	}
	return nil
}

// Check runs CheckPermutation and CheckSteps and summarizes the result as a
// Report instead of a hard error, for callers (cmd/hexweave) that want a
// diagnostic rather than a failure to propagate.
//
// Complexity: O(n) time.
func Check(tour []int, adj weave.Adjacency, verts weave.Verts) Report {
	n := len(verts)
	if err := CheckPermutation(tour, n); err != nil {
		return Report{Valid: false, Length: len(tour)}
	}

	for i := 0; i < n; i++ {
		a, b := tour[i], tour[(i+1)%n]
		linked := false
		if _, ok := adj[a][b]; ok && weave.IsValidEdge(verts[a], verts[b]) {
			linked = true
		}
		if !linked {
			return Report{
				Valid:   false,
				Length:  len(tour),
				BadStep: &BadStep{Index: i, A: a, B: b},
			}
		}
	}

	return Report{Valid: true, Length: len(tour)}
}
