package mark_test

import (
	"fmt"

	"github.com/katalvlaran/meshrefine/mark"
	"github.com/katalvlaran/meshrefine/sizefield"
	"github.com/katalvlaran/meshrefine/topology/fixtures"
)

// ExampleMark marks every edge of a single triangle against a
// zero-threshold Uniform field, so all three edges qualify.
func ExampleMark() {
	tri := fixtures.SingleTriangle()

	count, err := mark.Mark(tri.Mesh, sizefield.NewUniform(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("marked edges:", count)
	// Output:
	// marked edges: 3
}
