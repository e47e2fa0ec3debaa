package refine_test

import (
	"fmt"

	"github.com/katalvlaran/meshrefine/refine"
	"github.com/katalvlaran/meshrefine/sizefield"
	"github.com/katalvlaran/meshrefine/topology"
	"github.com/katalvlaran/meshrefine/topology/fixtures"
)

// ExampleRefiner_Refine runs one sweep over a single triangle against a
// zero-threshold Uniform field, which marks and bisects all three edges,
// replacing the one original face with four.
func ExampleRefiner_Refine() {
	tri := fixtures.SingleTriangle()

	r := refine.New(refine.Config{SizeField: sizefield.NewUniform(0)})

	changed, err := r.Refine(tri.Mesh)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("changed:", changed)
	fmt.Println("faces:", len(tri.Mesh.Iterate(topology.DimFace)))
	// Output:
	// changed: true
	// faces: 4
}
