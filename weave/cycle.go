package weave

import "sort"

// Cycle is a closed sub-cycle pending merge into the final tour (spec §4.6).
// It owns its vertex sequence by value; the stitcher mutates cycles one at a
// time via their own methods, so no shared mutability is required (spec §9's
// note on replacing leaked/interior-mutable cycle references with explicit
// per-cycle ownership).
//
// The edge cache follows a dirty-flag discipline rather than comparing
// against a snapshot of the previous data (spec §9): any mutation sets
// dirty=true, and Edges recomputes lazily, clearing the flag.
type Cycle struct {
	data       []int
	edgesCache EdgeSet
	dirty      bool

	adj    Adjacency
	verts  Verts
	viMap  ViMap
	maxXYZ int
}

// NewCycle wraps a closed vertex sequence as a Cycle. data is copied; the
// adjacency, vertex, and coordinate tables are shared read-only references
// (spec §5: safe to share freely since they never change during stitching).
func NewCycle(data []int, adj Adjacency, verts Verts, viMap ViMap, maxXYZ int) *Cycle {
	d := make([]int, len(data))
	copy(d, data)
	return &Cycle{data: d, dirty: true, adj: adj, verts: verts, viMap: viMap, maxXYZ: maxXYZ}
}

// Data returns the cycle's current vertex sequence. Callers must not mutate
// the returned slice.
func (c *Cycle) Data() []int { return c.data }

// Edges returns the set of canonical (a<b) lattice edges formed by
// consecutive pairs (and the wraparound pair), filtered to lattice-valid
// edges. The result is cached until the next mutation.
func (c *Cycle) Edges() EdgeSet {
	if c.dirty {
		c.edgesCache = edgesOf(c.data, c.verts)
		c.dirty = false
	}
	return c.edgesCache
}

// edgesOf computes the canonical, lattice-valid edge set of a closed vertex
// sequence.
func edgesOf(data []int, verts Verts) EdgeSet {
	n := len(data)
	out := make(EdgeSet, n)
	for i := 0; i < n; i++ {
		a, b := data[i], data[(i+1)%n]
		if IsValidEdge(verts[a], verts[b]) {
			out[NewEdge(a, b)] = struct{}{}
		}
	}
	return out
}

// AdjEdges returns the set of lattice edges parallel to e and adjacent to
// it: translating both endpoints of e by ±2 along each of the two axes that
// e does not itself step along (spec §4.6's eadjs / GLOSSARY entry).
func (c *Cycle) AdjEdges(e Edge) EdgeSet {
	a, b := c.verts[e.A], c.verts[e.B]
	stepAxis := axis(a, b)

	out := make(EdgeSet, 4)
	for _, off := range perpendicularOffsets(stepAxis) {
		na := translate(a, off)
		nb := translate(b, off)
		if na.AbsSum() > c.maxXYZ || nb.AbsSum() > c.maxXYZ {
			continue
		}
		idA, okA := c.viMap[na]
		idB, okB := c.viMap[nb]
		if !okA || !okB {
			continue
		}
		out[NewEdge(idA, idB)] = struct{}{}
	}
	return out
}

// perpendicularOffsets returns the four ±2 unit translations along the two
// axes other than stepAxis.
func perpendicularOffsets(stepAxis Axis) [4][3]int {
	switch stepAxis {
	case AxisX:
		return [4][3]int{{0, 2, 0}, {0, -2, 0}, {0, 0, 2}, {0, 0, -2}}
	case AxisY:
		return [4][3]int{{2, 0, 0}, {-2, 0, 0}, {0, 0, 2}, {0, 0, -2}}
	default: // AxisZ
		return [4][3]int{{2, 0, 0}, {-2, 0, 0}, {0, 2, 0}, {0, -2, 0}}
	}
}

func translate(v Vert, off [3]int) Vert {
	return Vert{X: v.X + off[0], Y: v.Y + off[1], Z: v.Z + off[2]}
}

// RotateToEdge rotates (and, if necessary, reverses) the cycle's sequence so
// that left ends up at position 0 and right at position 1. left and right
// must be adjacent in the cyclic sequence, in either direction.
func (c *Cycle) RotateToEdge(left, right int) error {
	n := len(c.data)
	idx := indexOfInt(c.data, left)
	if idx == -1 {
		return detailf(ErrMalformedInput, "vertex %d not found in cycle", left)
	}

	rotated := rotateLeftInts(c.data, idx)
	if n > 1 && rotated[1] == right {
		c.data = rotated
		c.dirty = true
		return nil
	}
	if n > 1 && rotated[n-1] == right {
		rev := reverseInts(rotated)
		idx2 := indexOfInt(rev, left)
		c.data = rotateLeftInts(rev, idx2)
		c.dirty = true
		return nil
	}
	return detailf(ErrMalformedInput, "vertices %d and %d are not adjacent in cycle", left, right)
}

// Join splices other into c by removing the lattice edge e from c and the
// lattice edge oe from other, and reconnecting the four freed endpoints with
// the two rung edges e.A-na and e.B-nb (na, nb being oe's endpoints, each
// lattice-adjacent to the e endpoint it reconnects to; spec §4.6).
//
// c is rotated so e becomes its wraparound edge (e.A last, e.B first); other
// is rotated so its own wraparound edge is oe, oriented with na first and nb
// last; appending other's sequence to c's then turns the two broken edges
// into the two new rung edges. other is consumed; c grows to hold both
// cycles' vertices.
func (c *Cycle) Join(e, oe Edge, other *Cycle) error {
	if err := c.RotateToEdge(e.A, e.B); err != nil {
		return err
	}
	c.data = rotateLeftInts(c.data, 1) // e.A last, e.B first

	na, nb := oe.A, oe.B
	if !hasNeighbor(c.adj, e.A, na) {
		na, nb = oe.B, oe.A
	}
	if err := other.RotateToEdge(nb, na); err != nil {
		return err
	}
	other.data = rotateLeftInts(other.data, 1) // na first, nb last

	c.data = append(c.data, other.data...)
	c.dirty = true
	return nil
}

func hasNeighbor(adj Adjacency, u, v int) bool {
	if u < 0 || u >= len(adj) {
		return false
	}
	_, ok := adj[u][v]
	return ok
}

func indexOfInt(data []int, v int) int {
	for i, x := range data {
		if x == v {
			return i
		}
	}
	return -1
}

func rotateLeftInts(data []int, k int) []int {
	n := len(data)
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = data[(i+k)%n]
	}
	return out
}

func reverseInts(data []int) []int {
	n := len(data)
	out := make([]int, n)
	for i, v := range data {
		out[n-1-i] = v
	}
	return out
}

// sortedEdges returns es's members in a fixed, deterministic order (by
// ascending (A,B)), so selection among several equally-valid candidates is
// reproducible (spec §4.6's "pick ONE" is otherwise iteration-order
// dependent over a Go map).
func sortedEdges(es EdgeSet) []Edge {
	out := make([]Edge, 0, len(es))
	for e := range es {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}
