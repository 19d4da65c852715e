package lattice

import (
	"sort"

	"github.com/katalvlaran/hexweave/weave"
)

// Enumerate lists every odd-coordinate triple inside bound and assigns each a
// dense vertex id, in ascending (z, y, x) order. See the package doc for why
// this ordering is part of the algorithm's observable contract, not an
// implementation detail.
//
// Complexity: O(bound.MaxSum³) candidate triples considered.
func Enumerate(bound Bound) (weave.Verts, weave.ViMap, error) {
	if bound.MaxSum <= 0 {
		return nil, nil, ErrEmptyBound
	}

	var verts weave.Verts
	for z := -bound.MaxSum; z <= bound.MaxSum; z++ {
		if !odd(z) {
			continue
		}
		for y := -bound.MaxSum; y <= bound.MaxSum; y++ {
			if !odd(y) {
				continue
			}
			for x := -bound.MaxSum; x <= bound.MaxSum; x++ {
				if !odd(x) {
					continue
				}
				v := weave.Vert{X: x, Y: y, Z: z}
				if !withinBound(v, bound) {
					continue
				}
				verts = append(verts, v)
			}
		}
	}
	if len(verts) == 0 {
		return nil, nil, ErrNoVertices
	}

	sort.Slice(verts, func(i, j int) bool {
		a, b := verts[i], verts[j]
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	viMap := make(weave.ViMap, len(verts))
	for id, v := range verts {
		viMap[v] = id
	}
	return verts, viMap, nil
}

// withinBound reports whether v satisfies bound's |x|+|y|+|z| cap and,
// if bound.Radius is set, its per-axis radius cap too.
func withinBound(v weave.Vert, bound Bound) bool {
	if v.AbsSum() > bound.MaxSum {
		return false
	}
	if bound.Radius > 0 {
		if absInt(v.X) > bound.Radius || absInt(v.Y) > bound.Radius || absInt(v.Z) > bound.Radius {
			return false
		}
	}
	return true
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func odd(n int) bool {
	return n%2 != 0
}
