package weave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ringAndSquareSlab builds a 12-vertex bottom-slab fixture shaped like an
// inner unit square (ids 0-3) with two outer "arm" vertices hanging off each
// square corner (ids 4-11), connected into a single ring through the arms
// plus four square chords. This is the z=-1 cross-section of a small
// hex-prism-stack lattice (bound such that |X|+|Y|+|Z| <= 5).
//
// Ids are assigned so that Q (coordinate (1,3,-1)) holds the maximum id,
// making it the spinner's deterministic start vertex.
func ringAndSquareSlab() (Verts, Adjacency) {
	// A, B, C, D: inner square. P, R, S, T, U, V, W, Q: outer arm tips.
	verts := []Vert{
		{1, 1, -1},   // 0 A
		{1, -1, -1},  // 1 B
		{-1, -1, -1}, // 2 C
		{-1, 1, -1},  // 3 D
		{3, 1, -1},   // 4 P
		{3, -1, -1},  // 5 R
		{1, -3, -1},  // 6 S
		{-1, -3, -1}, // 7 T
		{-3, -1, -1}, // 8 U
		{-3, 1, -1},  // 9 V
		{-1, 3, -1},  // 10 W
		{1, 3, -1},   // 11 Q (max id, max AbsSum tied with other arm tips)
	}
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // inner square chords
		{0, 4}, {0, 11}, // A-P, A-Q
		{1, 5}, {1, 6}, // B-R, B-S
		{2, 7}, {2, 8}, // C-T, C-U
		{3, 9}, {3, 10}, // D-V, D-W
		{4, 5}, {6, 7}, {8, 9}, {10, 11}, // outer arm edges: P-R, S-T, U-V, W-Q
	}
	vs, _, adj := buildGraph(verts, edges)
	return vs, adj
}

func TestSpinYarnRingAndSquare(t *testing.T) {
	verts, adj := ringAndSquareSlab()

	yarn, err := spinYarn(adj, verts)
	require.NoError(t, err)

	want := Yarn{
		{X: 1, Y: 3},   // Q (start)
		{X: -1, Y: 3},  // W
		{X: -1, Y: 1},  // D
		{X: -3, Y: 1},  // V
		{X: -3, Y: -1}, // U
		{X: -1, Y: -1}, // C
		{X: -1, Y: -3}, // T
		{X: 1, Y: -3},  // S
		{X: 1, Y: -1},  // B
		{X: 3, Y: -1},  // R
		{X: 3, Y: 1},   // P
		{X: 1, Y: 1},   // A
	}
	assert.Equal(t, want, yarn)

	require.Len(t, yarn, len(verts), "yarn must be Hamiltonian")
	seen := make(map[YarnPoint]bool, len(yarn))
	for _, p := range yarn {
		assert.False(t, seen[p], "yarn revisits point %+v", p)
		seen[p] = true
	}
}

func TestSpinYarnRejectsEmptyAdjacency(t *testing.T) {
	_, err := spinYarn(Adjacency{}, Verts{})
	assert.Error(t, err)
}
