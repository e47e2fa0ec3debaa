package template_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshrefine/template"
	"github.com/katalvlaran/meshrefine/topology"
	"github.com/katalvlaran/meshrefine/topology/fixtures"
)

func TestSplitEdge(t *testing.T) {
	tri := fixtures.SingleTriangle()
	sv := func(a, b topology.EntityID) topology.EntityID {
		return tri.Mesh.BuildVertex(topology.GeomClass{}, topology.Point3{}, topology.Param{})
	}

	children := template.SplitEdge(tri.Mesh, tri.E[0], tri.V[0], tri.V[1], sv)
	require.Len(t, children, 2)
	for _, c := range children {
		require.Equal(t, topology.Edge, tri.Mesh.Type(c))
	}
}

func TestDispatch_TriOneEdgeSplit(t *testing.T) {
	tri := fixtures.SingleTriangle()
	tri.Mesh.SetFlag(tri.E[0], topology.FlagSplit)

	mid := tri.Mesh.BuildVertex(topology.GeomClass{}, topology.Point3{}, topology.Param{})
	sv := func(a, b topology.EntityID) topology.EntityID { return mid }

	children, err := template.Dispatch(tri.Mesh, tri.Face, sv)
	require.NoError(t, err)
	require.Len(t, children, 2)
	for _, c := range children {
		require.Equal(t, topology.Tri, tri.Mesh.Type(c))
	}
}

func TestDispatch_TriAllThreeEdgesSplit(t *testing.T) {
	tri := fixtures.SingleTriangle()
	for _, e := range tri.E {
		tri.Mesh.SetFlag(e, topology.FlagSplit)
	}

	mid := tri.Mesh.BuildVertex(topology.GeomClass{}, topology.Point3{}, topology.Param{})
	sv := func(a, b topology.EntityID) topology.EntityID { return mid }

	children, err := template.Dispatch(tri.Mesh, tri.Face, sv)
	require.NoError(t, err)
	require.Len(t, children, 4)
	for _, c := range children {
		require.Equal(t, topology.Tri, tri.Mesh.Type(c))
	}
}

func TestDispatch_TriIllegalMaskIsImpossibleButGuarded(t *testing.T) {
	tri := fixtures.SingleTriangle()
	// Mask 0: no edge flagged. This cannot happen through propagate, but
	// Dispatch must still refuse it rather than invent a template.
	sv := func(a, b topology.EntityID) topology.EntityID { return topology.Nil }

	_, err := template.Dispatch(tri.Mesh, tri.Face, sv)
	require.True(t, errors.Is(err, template.ErrIllegalMask))
}

func TestDispatch_TetTwoAdjacentEdges(t *testing.T) {
	tet := fixtures.Tetrahedron()
	// E[0] = (v0,v1), E[3] = (v0,v3): adjacent at v0.
	tet.Mesh.SetFlag(tet.E[0], topology.FlagSplit)
	tet.Mesh.SetFlag(tet.E[3], topology.FlagSplit)

	mid := tet.Mesh.BuildVertex(topology.GeomClass{}, topology.Point3{}, topology.Param{})
	sv := func(a, b topology.EntityID) topology.EntityID { return mid }

	children, err := template.Dispatch(tet.Mesh, tet.Region, sv)
	require.NoError(t, err)
	require.Len(t, children, 3)
	for _, c := range children {
		require.Equal(t, topology.Tet, tet.Mesh.Type(c))
	}
}

func TestDispatch_TetOppositeEdgePairIsIllegal(t *testing.T) {
	tet := fixtures.Tetrahedron()
	// E[0] = (v0,v1), E[2] = (v2,v0) ... pick a genuinely opposite pair:
	// edges (0,1) and (2,3) share no vertex.
	var e01, e23 topology.EntityID
	for i := 0; i < topology.Tet.NumEdges(); i++ {
		a, b := topology.Tet.EdgeVerts(i)
		if (a == 0 && b == 1) || (a == 1 && b == 0) {
			e01 = tet.E[i]
		}
		if (a == 2 && b == 3) || (a == 3 && b == 2) {
			e23 = tet.E[i]
		}
	}
	require.NotEqual(t, topology.Nil, e01)
	require.NotEqual(t, topology.Nil, e23)

	tet.Mesh.SetFlag(e01, topology.FlagSplit)
	tet.Mesh.SetFlag(e23, topology.FlagSplit)

	sv := func(a, b topology.EntityID) topology.EntityID { return topology.Nil }
	_, err := template.Dispatch(tet.Mesh, tet.Region, sv)
	require.True(t, errors.Is(err, template.ErrIllegalMask))
}

func TestDispatch_QuadFourEdgesSplit(t *testing.T) {
	m := buildQuad(t)
	quad := m.quad
	for _, e := range m.edges {
		m.mesh.SetFlag(e, topology.FlagSplit)
	}

	mid := m.mesh.BuildVertex(topology.GeomClass{}, topology.Point3{}, topology.Param{})
	sv := func(a, b topology.EntityID) topology.EntityID { return mid }

	children, err := template.Dispatch(m.mesh, quad, sv)
	require.NoError(t, err)
	require.Len(t, children, 5) // 1 center quad + 4 corner tris
}
