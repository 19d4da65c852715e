package weave

// colorYarn returns the 180°-rotated copy of a yarn (spec §4.4): each row
// (x,y) maps to (-x, 2-y). The +2 offset compensates for the lattice's
// coordinate origin so the rotated path stays inside the lattice.
func colorYarn(a Yarn) Yarn {
	out := make(Yarn, len(a))
	for i, p := range a {
		out[i] = YarnPoint{X: -p.X, Y: 2 - p.Y}
	}
	return out
}

// spinAndColorYarn builds the immutable spool from the bottom-slab
// adjacency: key 3 is the natural orientation, key 1 is its 180° rotation.
func spinAndColorYarn(zAdj Adjacency, verts Verts) (Spool, error) {
	natural, err := spinYarn(zAdj, verts)
	if err != nil {
		return nil, err
	}
	return Spool{
		spoolKeyNatural: natural,
		spoolKeyColored: colorYarn(natural),
	}, nil
}
