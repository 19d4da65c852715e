package lattice_test

import (
	"fmt"

	"github.com/katalvlaran/hexweave/lattice"
)

// ExampleEnumerate demonstrates the smallest nonempty hex-prism-stack shell:
// MaxSum=3 admits only the eight unit corners (±1,±1,±1), each with
// |x|+|y|+|z| exactly 3. Ids ascend Z, then Y, then X.
func ExampleEnumerate() {
	verts, viMap, err := lattice.Enumerate(lattice.Bound{MaxSum: 3})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("vertex count:", len(verts))
	for id, v := range verts {
		fmt.Printf("id %d: (%d,%d,%d)\n", id, v.X, v.Y, v.Z)
	}
	fmt.Println("viMap round-trips id 0:", viMap[verts[0]] == 0)

	// Output:
	// vertex count: 8
	// id 0: (-1,-1,-1)
	// id 1: (1,-1,-1)
	// id 2: (-1,1,-1)
	// id 3: (1,1,-1)
	// id 4: (-1,-1,1)
	// id 5: (1,-1,1)
	// id 6: (-1,1,1)
	// id 7: (1,1,1)
	// viMap round-trips id 0: true
}
