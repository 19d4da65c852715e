package weave

import "sort"

// prepareLoom runs the loom assembler's core loop (spec §4.5): spin and
// color the bottom-slab yarn once, then for each z-slab bottom-to-top,
// select the slab's yarn, cut it at the previous slab's bobbins, join the
// resulting warps onto existing threads or start new ones, and wind fresh
// bobbins two units further up. The final step reflects every thread across
// z=0, closing each into a cycle.
func prepareLoom(viMap ViMap, verts Verts, zAdj Adjacency, zOrder ZOrder) (Loom, error) {
	spool, err := spinAndColorYarn(zAdj, verts)
	if err != nil {
		return nil, err
	}

	var bobbins Bobbins
	loom := Loom{}
	for _, lvl := range zOrder {
		warps, err := getWarps(lvl.Z, lvl.Order, bobbins, spool, viMap)
		if err != nil {
			return nil, err
		}
		woven := joinThreads(loom, warps)
		affixLooseThreads(&loom, warps, woven)

		if lvl.Z != -1 {
			bobbins, err = windThreads(loom, verts, viMap)
			if err != nil {
				return nil, err
			}
		}
	}

	if err := reflectLoom(loom, verts, viMap); err != nil {
		return nil, err
	}
	return loom, nil
}

// getWarps selects the yarn for zlevel via the spool key formula, projects
// its trailing `order` rows onto vertex ids, and cuts that sequence at the
// current bobbins (or returns it whole, on the first slab).
func getWarps(zlevel, order int, bobbins Bobbins, spool Spool, viMap ViMap) ([][]int, error) {
	nodeYarn, err := prepareYarn(spool, zlevel, order, viMap)
	if err != nil {
		return nil, err
	}
	if len(bobbins) == 0 {
		return [][]int{nodeYarn}, nil
	}
	return cutYarn(nodeYarn, bobbins), nil
}

// prepareYarn selects the spool entry for zlevel (the "(zlevel mod 4) + 4"
// key, asserted to land on one of the spool's two keys), takes its last
// `order` rows, and maps each (x,y) row to the vertex id at (x,y,zlevel).
func prepareYarn(spool Spool, zlevel, order int, viMap ViMap) ([]int, error) {
	key := (zlevel % 4) + 4
	if key != spoolKeyNatural && key != spoolKeyColored {
		return nil, detailf(ErrMalformedInput, "spool key %d (from zlevel %d) is not in the admissible z range", key, zlevel)
	}

	yarn := spool[key]
	if order <= 0 || order > len(yarn) {
		return nil, detailf(ErrMalformedInput, "slab order %d exceeds spool yarn length %d at zlevel %d", order, len(yarn), zlevel)
	}

	suffix := yarn[len(yarn)-order:]
	tour := make([]int, order)
	for i, p := range suffix {
		id, ok := viMap[Vert{X: p.X, Y: p.Y, Z: zlevel}]
		if !ok {
			return nil, detailf(ErrMalformedInput, "no vertex at (%d,%d,%d)", p.X, p.Y, zlevel)
		}
		tour[i] = id
	}
	return tour, nil
}

// cutYarn splits tour into contiguous subsequences at every bobbin position
// (spec §4.5c), taking the positions in ascending tour order: each bobbin
// position ends an inclusive slice that starts just after the previous
// bobbin. If the last bobbin position isn't at the tour's end, that bobbin
// instead splits its stretch in two: the vertices before it (excluding it)
// and the trailing remainder starting at it. A subsequence is kept as is when
// its first element is a bobbin and reversed otherwise; the stretch before a
// non-final last bobbin holds no bobbin, so it comes out reversed and starts
// at the vertex just before that bobbin.
func cutYarn(tour []int, bobbins Bobbins) [][]int {
	posOf := make(map[int]int, len(tour))
	for i, id := range tour {
		posOf[id] = i
	}

	var positions []int
	for _, b := range bobbins {
		if p, ok := posOf[b]; ok {
			positions = append(positions, p)
		}
	}
	sort.Ints(positions)

	var subtours [][]int
	prev := -1
	lastTourIdx := len(tour) - 1
	for i, pos := range positions {
		if i == len(positions)-1 && pos != lastTourIdx {
			if slice := tour[prev+1 : pos]; len(slice) > 0 {
				subtours = append(subtours, orientToBobbin(slice, bobbins))
			}
			if slice := tour[pos:]; len(slice) > 0 {
				subtours = append(subtours, orientToBobbin(slice, bobbins))
			}
			continue
		}
		if slice := tour[prev+1 : pos+1]; len(slice) > 0 {
			subtours = append(subtours, orientToBobbin(slice, bobbins))
		}
		prev = pos
	}
	return subtours
}

// orientToBobbin returns slice, reversed if needed, so its first element is
// a bobbin vertex. The input is never mutated.
func orientToBobbin(slice []int, bobbins Bobbins) []int {
	if bobbins.contains(slice[0]) {
		out := make([]int, len(slice))
		copy(out, slice)
		return out
	}
	out := make([]int, len(slice))
	for i, v := range slice {
		out[len(slice)-1-i] = v
	}
	return out
}

// joinThreads tries to splice each warp onto an existing thread's front or
// back. A thread may absorb multiple warps in sequence (its endpoints move
// after each splice); a warp is consumed by at most one thread. Returns the
// set of warp indices that were joined.
func joinThreads(loom Loom, warps [][]int) map[int]bool {
	woven := make(map[int]bool, len(warps))
	for _, thread := range loom {
		for idx, warp := range warps {
			if woven[idx] {
				continue
			}
			switch {
			case warp[0] == thread.Front():
				thread.PrependReversed(warp[1:])
			case warp[0] == thread.Back():
				thread.AppendAll(warp[1:])
			default:
				continue
			}
			woven[idx] = true
		}
	}
	return woven
}

// affixLooseThreads appends every warp that joinThreads did not consume as a
// brand-new thread, preserving warp order.
func affixLooseThreads(loom *Loom, warps [][]int, woven map[int]bool) {
	for idx, warp := range warps {
		if woven[idx] {
			continue
		}
		*loom = append(*loom, NewThread(warp))
	}
}

// windThreads pushes a new bobbin vertex onto each end of every thread, two
// units further up (z+2) from that end's current coordinate, and returns
// every newly pushed id as the next slab's bobbins.
func windThreads(loom Loom, verts Verts, viMap ViMap) (Bobbins, error) {
	bobbins := make(Bobbins, 0, len(loom)*2)
	for _, thread := range loom {
		left, err := above(verts[thread.Front()], viMap)
		if err != nil {
			return nil, err
		}
		right, err := above(verts[thread.Back()], viMap)
		if err != nil {
			return nil, err
		}
		thread.PushFront(left)
		thread.PushBack(right)
		bobbins = append(bobbins, left, right)
	}
	return bobbins, nil
}

// above looks up the vertex id two units above v (same x,y, z+2).
func above(v Vert, viMap ViMap) (int, error) {
	id, ok := viMap[Vert{X: v.X, Y: v.Y, Z: v.Z + 2}]
	if !ok {
		return 0, detailf(ErrMalformedInput, "no vertex above (%d,%d,%d)", v.X, v.Y, v.Z)
	}
	return id, nil
}
