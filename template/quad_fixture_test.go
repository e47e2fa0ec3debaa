package template_test

import (
	"testing"

	"github.com/katalvlaran/meshrefine/topology"
	"github.com/katalvlaran/meshrefine/topology/memmesh"
)

type quadFixture struct {
	mesh  *memmesh.Mesh
	verts [4]topology.EntityID
	edges [4]topology.EntityID
	quad  topology.EntityID
}

func buildQuad(t *testing.T) quadFixture {
	t.Helper()

	m := memmesh.New(2)
	class := topology.GeomClass{Dim: topology.DimFace, Tag: 1}

	pts := [4]topology.Point3{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}
	var v [4]topology.EntityID
	for i, p := range pts {
		v[i] = m.BuildVertex(class, p, topology.Param{})
	}

	var e [4]topology.EntityID
	for i := 0; i < topology.Quad.NumEdges(); i++ {
		a, b := topology.Quad.EdgeVerts(i)
		e[i] = m.BuildElement(v[a], topology.Edge, []topology.EntityID{v[a], v[b]})
	}

	quad := m.BuildElement(v[0], topology.Quad, []topology.EntityID{v[0], v[1], v[2], v[3]})

	return quadFixture{mesh: m, verts: v, edges: e, quad: quad}
}
