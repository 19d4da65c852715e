// Package tourcheck validates a finished weave.Tour against the adjacency and
// vertex table it was built from.
//
// What:
//
//   - CheckPermutation verifies the tour is a permutation of [0..n-1].
//   - CheckSteps verifies every consecutive pair (including the wraparound) is
//     both adjacency-linked and a geometrically valid lattice edge.
//   - Check combines both into a single Report for callers that want a
//     summary rather than a hard failure.
//
// Why:
//
//   - weave.Weave's own internal invariants are enforced throughout its
//     pipeline, but a caller assembling its own adjacency/vertex table (see
//     package lattice) wants an independent, after-the-fact check.
//
// Complexity:
//
//   - CheckPermutation: O(n) time, O(n) space.
//   - CheckSteps: O(n) time.
//
// Errors:
//
//   - ErrWrongLength: len(tour) != n.
//   - ErrDuplicateVertex: some id appears more than once in tour, or is
//     outside [0..n-1].
//   - ErrNotAnEdge: a consecutive pair is not both adjacency-linked and a
//     valid lattice edge.
package tourcheck
