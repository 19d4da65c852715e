package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAdjacencyIsSymmetric(t *testing.T) {
	verts, viMap, err := Enumerate(Bound{MaxSum: 5})
	require.NoError(t, err)
	adj := BuildAdjacency(verts, viMap)

	require.Len(t, adj, len(verts))
	for id, neighbors := range adj {
		for nid := range neighbors {
			_, ok := adj[nid][id]
			assert.True(t, ok, "adjacency not symmetric: %d -> %d but not %d -> %d", id, nid, nid, id)
		}
	}
}

func TestBuildAdjacencyOnlyListsLatticeEdges(t *testing.T) {
	verts, viMap, err := Enumerate(Bound{MaxSum: 5})
	require.NoError(t, err)
	adj := BuildAdjacency(verts, viMap)

	for id, neighbors := range adj {
		a := verts[id]
		for nid := range neighbors {
			b := verts[nid]
			dx, dy, dz := absInt(a.X-b.X), absInt(a.Y-b.Y), absInt(a.Z-b.Z)
			sum := dx + dy + dz
			isAxisStep := sum == 2 && (dx == 2 || dy == 2 || dz == 2)
			assert.True(t, isAxisStep, "edge %d-%d (%+v, %+v) is not a unit-axis step", id, nid, a, b)
		}
	}
}

func TestBuildAdjacencyMaxDegreeIsSix(t *testing.T) {
	verts, viMap, err := Enumerate(Bound{MaxSum: 5})
	require.NoError(t, err)
	adj := BuildAdjacency(verts, viMap)

	best := 0
	for id := range adj {
		if n := len(adj[id]); n > best {
			best = n
		}
	}
	assert.Equal(t, 6, best, "expected some vertex with all 6 neighbors present")
}

func TestBuildAdjacencyEmptyInput(t *testing.T) {
	adj := BuildAdjacency(nil, nil)
	assert.Empty(t, adj)
}
