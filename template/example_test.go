package template_test

import (
	"fmt"

	"github.com/katalvlaran/meshrefine/template"
	"github.com/katalvlaran/meshrefine/topology"
	"github.com/katalvlaran/meshrefine/topology/fixtures"
)

// ExampleSplitEdge bisects one edge of a single triangle against a
// freshly built midpoint vertex, yielding two child edges.
func ExampleSplitEdge() {
	tri := fixtures.SingleTriangle()

	mid := tri.Mesh.BuildVertex(topology.GeomClass{Dim: topology.DimEdge, Tag: 1}, topology.Point3{X: 0.5, Y: 0}, topology.Param{})
	sv := func(v0, v1 topology.EntityID) topology.EntityID { return mid }

	children := template.SplitEdge(tri.Mesh, tri.E[0], tri.V[0], tri.V[1], sv)

	fmt.Println("children:", len(children))
	fmt.Println("type:", tri.Mesh.Type(children[0]))
	// Output:
	// children: 2
	// type: EDGE
}
