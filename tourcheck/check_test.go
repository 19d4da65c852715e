package tourcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexweave/lattice"
	"github.com/katalvlaran/hexweave/weave"
)

// unitSquare returns a 4-vertex closed square lattice: verts/adj/tour form a
// trivially valid Hamiltonian cycle.
func unitSquare() (weave.Verts, weave.Adjacency, []int) {
	verts := weave.Verts{
		{X: 1, Y: 1, Z: -1},
		{X: 1, Y: -1, Z: -1},
		{X: -1, Y: -1, Z: -1},
		{X: -1, Y: 1, Z: -1},
	}
	adj := weave.Adjacency{
		{1: struct{}{}, 3: struct{}{}},
		{0: struct{}{}, 2: struct{}{}},
		{1: struct{}{}, 3: struct{}{}},
		{2: struct{}{}, 0: struct{}{}},
	}
	return verts, adj, []int{0, 1, 2, 3}
}

func TestCheckPermutationValid(t *testing.T) {
	assert.NoError(t, CheckPermutation([]int{2, 0, 3, 1}, 4))
}

func TestCheckPermutationWrongLength(t *testing.T) {
	err := CheckPermutation([]int{0, 1, 2}, 4)
	assert.ErrorIs(t, err, ErrWrongLength)
}

func TestCheckPermutationDuplicateVertex(t *testing.T) {
	err := CheckPermutation([]int{0, 1, 1, 3}, 4)
	assert.ErrorIs(t, err, ErrDuplicateVertex)
}

func TestCheckPermutationOutOfRange(t *testing.T) {
	err := CheckPermutation([]int{0, 1, 9, 3}, 4)
	assert.ErrorIs(t, err, ErrDuplicateVertex)
}

func TestCheckStepsValid(t *testing.T) {
	verts, adj, tour := unitSquare()
	assert.NoError(t, CheckSteps(tour, adj, verts))
}

func TestCheckStepsRejectsNonAdjacentPair(t *testing.T) {
	verts, adj, _ := unitSquare()
	badTour := []int{0, 2, 1, 3} // 0-2 is a diagonal, not an edge
	err := CheckSteps(badTour, adj, verts)
	assert.ErrorIs(t, err, ErrNotAnEdge)
}

func TestCheckOnValidTour(t *testing.T) {
	verts, adj, tour := unitSquare()
	report := Check(tour, adj, verts)
	assert.True(t, report.Valid, "report.Valid = false, want true: %+v", report)
	assert.Equal(t, 4, report.Length)
	assert.Nil(t, report.BadStep)
}

func TestCheckReportsBadStep(t *testing.T) {
	verts, adj, _ := unitSquare()
	report := Check([]int{0, 2, 1, 3}, adj, verts)
	assert.False(t, report.Valid)
	require.NotNil(t, report.BadStep)
	assert.Equal(t, 0, report.BadStep.A)
	assert.Equal(t, 2, report.BadStep.B)
}

func TestCheckReportsWrongLengthAsInvalid(t *testing.T) {
	verts, adj, _ := unitSquare()
	report := Check([]int{0, 1, 2}, adj, verts)
	assert.False(t, report.Valid)
}

// TestIntegrationLatticeWeaveTourcheck ties lattice, weave and tourcheck
// together end to end, mirroring tsp/integration_test.go's style: build a
// small real lattice, weave it, and confirm the result passes Check cleanly.
func TestIntegrationLatticeWeaveTourcheck(t *testing.T) {
	verts, viMap, err := lattice.Enumerate(lattice.Bound{MaxSum: 5})
	require.NoError(t, err)
	adj := lattice.BuildAdjacency(verts, viMap)

	zAdj, zOrder, err := weave.Shrink(verts, adj)
	require.NoError(t, err)

	tour, err := weave.Weave(adj, viMap, verts, zAdj, zOrder, 5)
	require.NoError(t, err)

	report := Check(tour, adj, verts)
	assert.True(t, report.Valid, "Check reported invalid tour: %+v", report)
	assert.Equal(t, len(verts), report.Length)
}
