package lattice

import "github.com/katalvlaran/hexweave/weave"

// BuildAdjacency probes each vertex's six axisOffsets neighbors in viMap,
// mirroring gridgraph's precomputed-offset probe loop generalized from 2
// dimensions to 3. Edges are recorded symmetrically: if v is adjacent to w,
// w is adjacent to v.
//
// Complexity: O(|verts|), 6 map lookups per vertex.
func BuildAdjacency(verts weave.Verts, viMap weave.ViMap) weave.Adjacency {
	adj := make(weave.Adjacency, len(verts))
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}

	for id, v := range verts {
		for _, off := range axisOffsets {
			n := weave.Vert{X: v.X + off[0], Y: v.Y + off[1], Z: v.Z + off[2]}
			nid, ok := viMap[n]
			if !ok {
				continue
			}
			adj[id][nid] = struct{}{}
			adj[nid][id] = struct{}{}
		}
	}

	return adj
}
