package weave

// Weave is the core's single public entry point (spec §6): given a
// full-graph adjacency, coordinate tables, the bottom-slab-restricted
// adjacency and z-order from Shrink, and the lattice bound, it returns a
// Hamiltonian cycle over every vertex.
func Weave(adjacency Adjacency, viMap ViMap, vertices Verts, zAdjacency Adjacency, zOrder ZOrder, maxXYZ int) (Tour, error) {
	loom, err := prepareLoom(viMap, vertices, zAdjacency, zOrder)
	if err != nil {
		return nil, err
	}
	if len(loom) == 0 {
		return nil, ErrEmptyLoom
	}

	cycles := make([]*Cycle, len(loom))
	for i, thread := range loom {
		cycles[i] = NewCycle(thread.Ids(), adjacency, vertices, viMap, maxXYZ)
	}

	main, err := stitchAll(cycles)
	if err != nil {
		return nil, err
	}
	return Tour(main.Data()), nil
}

// stitchAll merges every cycle after the first ("others") into the first
// ("main") by repeatedly finding a lattice-adjacent parallel edge pair
// between main and the next other, then splicing across it (spec §4.6).
func stitchAll(cycles []*Cycle) (*Cycle, error) {
	if len(cycles) == 0 {
		return nil, ErrEmptyLoom
	}

	main := cycles[0]
	for _, other := range cycles[1:] {
		e, oe, ok := findJoin(main, other)
		if !ok {
			return nil, ErrUnjoinableCycles
		}
		if err := main.Join(e, oe, other); err != nil {
			return nil, err
		}
	}
	return main, nil
}

// findJoin scans main's edges (in a fixed deterministic order) for one whose
// adjacent lattice edges intersect other's edge set, returning the first
// such pair found.
func findJoin(main, other *Cycle) (e, oe Edge, ok bool) {
	otherEdges := other.Edges()
	for _, candidate := range sortedEdges(main.Edges()) {
		for _, adj := range sortedEdges(main.AdjEdges(candidate)) {
			if _, present := otherEdges[adj]; present {
				return candidate, adj, true
			}
		}
	}
	return Edge{}, Edge{}, false
}
