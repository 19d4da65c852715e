package weave

import "sync"

// reflectLoom mirrors every thread across z=0 (spec §4.5's final step),
// closing each into a cycle spanning the whole stack. Threads are
// independent, so each is reflected by its own goroutine; every goroutine
// writes only to its own index, and reflectLoom waits for all of them
// before returning — no shared mutable state, order-preserving (spec §5).
func reflectLoom(loom Loom, verts Verts, viMap ViMap) error {
	errs := make([]error, len(loom))

	var wg sync.WaitGroup
	wg.Add(len(loom))
	for i, thread := range loom {
		go func(i int, thread *Thread) {
			defer wg.Done()
			mirrored, err := reflectThread(thread, verts, viMap)
			if err != nil {
				errs[i] = err
				return
			}
			thread.AppendAll(mirrored)
		}(i, thread)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// reflectThread computes the mirror image of thread's vertices across z=0,
// in reverse traversal order (front-to-back in the original becomes
// back-to-front in the mirror), so appending the result to the thread
// closes a palindromic z-profile around z=0.
func reflectThread(thread *Thread, verts Verts, viMap ViMap) ([]int, error) {
	ids := thread.Ids()
	out := make([]int, len(ids))
	for i, id := range ids {
		v := verts[id]
		mirrored, ok := viMap[Vert{X: v.X, Y: v.Y, Z: -v.Z}]
		if !ok {
			return nil, detailf(ErrMalformedInput, "no mirror vertex for (%d,%d,%d)", v.X, v.Y, v.Z)
		}
		out[len(ids)-1-i] = mirrored
	}
	return out, nil
}
