package lattice

import "github.com/katalvlaran/hexweave/weave"

// Bound describes the extent of a hex-prism-stack lattice: every enumerated
// vertex satisfies |x|+|y|+|z| <= MaxSum and, when Radius is nonzero,
// max(|x|,|y|,|z|) <= Radius (the discrete-ball cutoff that keeps the stack's
// cross-section from flaring out indefinitely as MaxSum grows).
type Bound struct {
	// MaxSum is the maximum |x|+|y|+|z| a vertex may have.
	MaxSum int
	// Radius additionally bounds max(|x|,|y|,|z|); zero means unbounded (only
	// MaxSum constrains the shape).
	Radius int
}

// axisOffsets are the six unit-axis ±2 translations a lattice vertex may
// step along, mirroring gridgraph's precomputed neighborOffsets pattern
// generalized from 2 dimensions to 3.
var axisOffsets = [6][3]int{
	{2, 0, 0}, {-2, 0, 0},
	{0, 2, 0}, {0, -2, 0},
	{0, 0, 2}, {0, 0, -2},
}

// Table holds a fully built lattice: its dense vertex table, the inverse
// coordinate lookup, and the 6-directional adjacency.
type Table struct {
	Vertices  weave.Verts
	ViMap     weave.ViMap
	Adjacency weave.Adjacency
}
