package weave

import "sort"

// Shrink builds the bottom-slab (z=-1)-restricted adjacency and the z-order
// for every z<0 slab, from the full vertex table and full-graph adjacency.
// It is the auxiliary public entry point named in spec §6.
//
// Shrink groups vertex ids by z-coordinate, restricted to z<0, then:
//   - z_adjacency is the induced subgraph of adj on the z=-1 slab only (the
//     only slab the spinner ever runs on);
//   - z_order is every z<0 slab's (level, size) pair, ascending by level.
//
// Complexity: O(|V| + |E|) time, O(|V|) space.
func Shrink(verts Verts, adj Adjacency) (Adjacency, ZOrder, error) {
	if len(verts) != len(adj) {
		return nil, nil, detailf(ErrMalformedInput, "verts has %d entries but adj has %d", len(verts), len(adj))
	}

	byLevel := stratifiedNodes(verts)
	if len(byLevel) == 0 {
		return nil, nil, detailf(ErrMalformedInput, "no vertices with z<0 found")
	}

	bottom, ok := byLevel[-1]
	if !ok || len(bottom) == 0 {
		return nil, nil, detailf(ErrMalformedInput, "no vertices at z=-1 (bottom slab)")
	}

	zAdj, err := filterAdjacency(adj, bottom)
	if err != nil {
		return nil, nil, err
	}

	return zAdj, zOrderOf(byLevel), nil
}

// stratifiedNodes groups vertex ids by z-coordinate, for z<0 only.
func stratifiedNodes(verts Verts) map[int]map[int]struct{} {
	byLevel := make(map[int]map[int]struct{})
	for id, v := range verts {
		if v.Z >= 0 {
			continue
		}
		set, ok := byLevel[v.Z]
		if !ok {
			set = make(map[int]struct{})
			byLevel[v.Z] = set
		}
		set[id] = struct{}{}
	}
	return byLevel
}

// zOrderOf converts a level->set map into the ascending-by-level ZOrder.
func zOrderOf(byLevel map[int]map[int]struct{}) ZOrder {
	order := make(ZOrder, 0, len(byLevel))
	for z, set := range byLevel {
		order = append(order, ZLevel{Z: z, Order: len(set)})
	}
	sort.Slice(order, func(i, j int) bool { return order[i].Z < order[j].Z })
	return order
}

// filterAdjacency returns the induced subgraph of adj on the vertex set S:
// for every id in S, its neighbor set is intersected with S; ids outside S
// get a nil entry.
func filterAdjacency(adj Adjacency, s map[int]struct{}) (Adjacency, error) {
	out := make(Adjacency, len(adj))
	for id := range s {
		if id < 0 || id >= len(adj) {
			return nil, detailf(ErrMalformedInput, "vertex id %d out of range", id)
		}
		neighbors := adj[id]
		filtered := make(map[int]struct{}, len(neighbors))
		for n := range neighbors {
			if _, ok := s[n]; ok {
				filtered[n] = struct{}{}
			}
		}
		out[id] = filtered
	}
	return out, nil
}
