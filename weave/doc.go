// Package weave constructs a Hamiltonian cycle over the vertices of a
// hex-prism-stack lattice: the odd-coordinate integer points (x,y,z) with
// |x|+|y|+|z| bounded, connected by unit-axis steps of length 2.
//
// # What & Why
//
// Given a precomputed adjacency table and vertex coordinate table for such a
// lattice, Weave returns a permutation of all vertex ids such that every
// consecutive pair (and the wraparound pair) is a lattice edge. The
// construction is a hand-engineered weaving scheme, not a general TSP
// heuristic:
//
//  1. Partition the lattice into horizontal z-slabs.
//  2. Spin a space-filling Hamiltonian path through the bottom slab (z=-1)
//     with a greedy "outermost-first, axis-alternating tail" rule.
//  3. Color that path (a 180° rotated copy) to get two yarn orientations.
//  4. Assemble a loom: for each z-slab bottom-to-top, cut the slab's yarn at
//     the bobbins left by the slab below, splice the pieces onto existing
//     threads, and wind new bobbins two units further up.
//  5. Reflect every finished thread across z=0 to close it into a cycle
//     spanning the whole stack.
//  6. Stitch the resulting disjoint cycles into a single Hamiltonian cycle
//     by repeatedly finding a pair of lattice-adjacent parallel edges
//     (one on the accumulating main cycle, one on the next cycle) and
//     splicing across them.
//
// # Determinism
//
//   - No randomness anywhere; Weave is a pure function of its inputs.
//   - Candidate sets are sorted by vertex id before any max-by-key selection,
//     so tie-breaks are reproducible regardless of map iteration order.
//   - The only concurrency is the reflection step (independent per thread,
//     order-preserving collection); it never affects the result.
//
// # Errors (strict sentinels)
//
//	ErrMalformedInput, ErrNoCandidate, ErrEmptyLoom, ErrUnjoinableCycles.
//
// Errors are never wrapped with fmt.Errorf where a sentinel suffices; callers
// that need offending-vertex context get it via errors.As on *DetailedError,
// and errors.Is still matches the underlying sentinel.
//
// # Complexity
//
//	Shrink:  O(|V|) time, O(|V|) space.
//	spin:    O(|V_slab|²) worst case (neighbor scan per step).
//	loom:    O(|V|) time overall across all z-slabs.
//	reflect: O(|V|) time, parallel across threads.
//	stitch:  O(k·|E|) for k "other" cycles, dominated by edge-set intersection.
package weave
