package weave

// buildGraph assembles Verts/ViMap/Adjacency from an explicit vertex list and
// edge list, for use by tests that hand-construct small fixtures rather than
// deriving them from a real lattice enumeration.
func buildGraph(verts []Vert, edges [][2]int) (Verts, ViMap, Adjacency) {
	vs := make(Verts, len(verts))
	copy(vs, verts)

	vi := make(ViMap, len(verts))
	for id, v := range vs {
		vi[v] = id
	}

	adj := make(Adjacency, len(verts))
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}
	for _, e := range edges {
		adj[e[0]][e[1]] = struct{}{}
		adj[e[1]][e[0]] = struct{}{}
	}
	return vs, vi, adj
}
