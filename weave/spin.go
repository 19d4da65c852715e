package weave

import "sort"

// spinYarn constructs a Hamiltonian path through the bottom slab (spec
// §4.3) and flattens it to a 2D (x,y) yarn.
//
// Algorithm — greedy outermost-first with an axis-alternating tail:
//
//  1. Start at the numerically largest vertex id present in zAdj.
//  2. At each step, among the unvisited neighbors of the current vertex,
//     pick the one maximizing AbsSum(coord). In the final 5 steps, only
//     neighbors reached by a different axis than the previous step are
//     eligible, on top of the same AbsSum maximization. The first step has
//     no previous step, so it is never axis-constrained.
//
// Candidates are always sorted by id before the max-by-key scan, so ties
// resolve deterministically: the highest-id candidate among equally-maximal
// ones wins (see DESIGN.md's open-question decisions).
//
// Complexity: O(order²) worst case (each step scans the current vertex's
// neighbor set, filtered against the path so far).
func spinYarn(zAdj Adjacency, verts Verts) (Yarn, error) {
	start, order, err := startAndOrder(zAdj)
	if err != nil {
		return nil, err
	}

	path := make([]int, 1, order)
	path[0] = start
	visited := make(map[int]struct{}, order)
	visited[start] = struct{}{}

	for idx := 1; idx < order; idx++ {
		next, err := nextNode(path, zAdj, verts, idx, order, visited)
		if err != nil {
			return nil, err
		}
		path = append(path, next)
		visited[next] = struct{}{}
	}

	return nodesToYarn(path, verts), nil
}

// startAndOrder finds the numerically largest vertex id present in zAdj and
// counts how many ids are present (the slab's order).
func startAndOrder(zAdj Adjacency) (start, order int, err error) {
	start = -1
	for id, neighbors := range zAdj {
		if neighbors == nil {
			continue
		}
		order++
		if id > start {
			start = id
		}
	}
	if start == -1 || order == 0 {
		return 0, 0, detailf(ErrMalformedInput, "empty adjacency at spin step")
	}
	return start, order, nil
}

// nextNode picks the next vertex in the path under construction (spec
// §4.3 step 2).
func nextNode(path []int, adj Adjacency, verts Verts, idx, order int, visited map[int]struct{}) (int, error) {
	curr := path[len(path)-1]

	candidates := make([]int, 0, len(adj[curr]))
	for n := range adj[curr] {
		if _, seen := visited[n]; !seen {
			candidates = append(candidates, n)
		}
	}
	sort.Ints(candidates)

	tailPhase := idx >= order-5 && len(path) >= 2
	var prevAxis Axis
	if tailPhase {
		prevAxis = axis(verts[path[len(path)-2]], verts[curr])
	}

	best, bestScore := -1, -1
	for _, n := range candidates {
		if tailPhase && axis(verts[curr], verts[n]) == prevAxis {
			continue
		}
		score := verts[n].AbsSum()
		if score >= bestScore {
			bestScore, best = score, n
		}
	}
	if best == -1 {
		return 0, detailf(ErrNoCandidate, "no admissible neighbor of vertex %d at step %d", curr, idx)
	}
	return best, nil
}

// nodesToYarn projects a vertex-id path onto its (x,y) yarn.
func nodesToYarn(path []int, verts Verts) Yarn {
	y := make(Yarn, len(path))
	for i, id := range path {
		v := verts[id]
		y[i] = YarnPoint{X: v.X, Y: v.Y}
	}
	return y
}
