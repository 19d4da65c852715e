// Package lattice enumerates the hex-prism-stack vertex set that weave
// operates on and builds its 6-directional adjacency.
//
// What:
//
//   - Bound describes the lattice's extent: a maximum |x|+|y|+|z| sum and a
//     discrete-ball radius cutoff.
//   - Enumerate lists every odd-coordinate triple inside that bound, in a
//     fixed deterministic order, and assigns each a dense vertex id.
//   - BuildAdjacency probes each vertex's six unit-axis ±2 neighbors.
//
// Why:
//
//   - weave.Weave takes its vertex table and adjacency as opaque inputs; this
//     package is one concrete way to produce them for the hex-prism-stack
//     shape weave was designed around. weave itself never imports lattice.
//
// Determinism:
//
//   - Id assignment is sorted by (z, y, x) ascending. weave's spinner
//     (spinYarn) starts at "the numerically largest id present in the bottom
//     slab's adjacency" (see weave/spin.go), so id order here is a load-bearing,
//     documented contract, not an implementation detail.
//
// Complexity:
//
//   - Enumerate: O(bound.MaxSum³) candidate triples considered.
//   - BuildAdjacency: O(|V|) probes, 6 lookups each.
//
// Errors:
//
//   - ErrEmptyBound: bound.MaxSum <= 0.
//   - ErrNoVertices: enumeration produced zero vertices.
package lattice
