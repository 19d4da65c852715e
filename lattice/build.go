package lattice

// Build enumerates bound's vertex set and builds its adjacency in one call,
// returning both bundled as a Table. Equivalent to calling Enumerate then
// BuildAdjacency separately; provided for callers (cmd/hexweave) that always
// need both together.
func Build(bound Bound) (Table, error) {
	verts, viMap, err := Enumerate(bound)
	if err != nil {
		return Table{}, err
	}
	adj := BuildAdjacency(verts, viMap)
	return Table{Vertices: verts, ViMap: viMap, Adjacency: adj}, nil
}
