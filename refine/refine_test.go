package refine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshrefine/refine"
	"github.com/katalvlaran/meshrefine/sizefield"
	"github.com/katalvlaran/meshrefine/topology"
	"github.com/katalvlaran/meshrefine/topology/fixtures"
	"github.com/katalvlaran/meshrefine/topology/memmesh"
)

// onlyEdges is a SizeField test double that splits exactly the given edges
// at their midpoint, independent of geometry — used to pin down which
// edges a scenario marks without depending on incidental edge lengths.
type onlyEdges struct {
	targets map[topology.EntityID]bool
}

func newOnlyEdges(ids ...topology.EntityID) *onlyEdges {
	t := make(map[topology.EntityID]bool, len(ids))
	for _, id := range ids {
		t[id] = true
	}
	return &onlyEdges{targets: t}
}

func (o *onlyEdges) ShouldSplit(m topology.Mesh, edge topology.EntityID) bool { return o.targets[edge] }
func (o *onlyEdges) PlaceSplit(m topology.Mesh, edge topology.EntityID) (float64, error) {
	return 0.5, nil
}
func (o *onlyEdges) Interpolate(m topology.Mesh, edge topology.EntityID, x float64, v topology.EntityID) error {
	return nil
}
func (o *onlyEdges) TransferDimension() int { return 0 }

// recordingTransfer is a Transfer test double that collects every
// OnVertex/OnRefine call it receives, letting tests recover the handles
// the orchestrator created without reaching into its internal state.
type recordingTransfer struct {
	vertexCalls []vertexCall
	refineCalls []refineCall
}

type vertexCall struct {
	Edge   topology.EntityID
	X      float64
	Vertex topology.EntityID
}

type refineCall struct {
	Parent   topology.EntityID
	Children []topology.EntityID
}

func (r *recordingTransfer) TransferDimension() int { return 0 }

func (r *recordingTransfer) OnVertex(m topology.Mesh, edge topology.EntityID, x float64, v topology.EntityID) error {
	r.vertexCalls = append(r.vertexCalls, vertexCall{Edge: edge, X: x, Vertex: v})
	return nil
}

func (r *recordingTransfer) OnRefine(m topology.Mesh, parent topology.EntityID, children []topology.EntityID) error {
	r.refineCalls = append(r.refineCalls, refineCall{Parent: parent, Children: children})
	return nil
}

func (r *recordingTransfer) vertexFor(edge topology.EntityID) topology.EntityID {
	for _, c := range r.vertexCalls {
		if c.Edge == edge {
			return c.Vertex
		}
	}
	return topology.Nil
}

func TestRefine_NoSizeFieldConfigured(t *testing.T) {
	tri := fixtures.SingleTriangle()
	r := refine.New(refine.Config{})
	_, err := r.Refine(tri.Mesh)
	require.ErrorIs(t, err, refine.ErrNoSizeField)
}

func TestRefine_EmptySweepIsNoOp(t *testing.T) {
	tri := fixtures.SingleTriangle()
	r := refine.New(refine.Config{SizeField: sizefield.NewUniform(100)})
	changed, err := r.Refine(tri.Mesh)
	require.NoError(t, err)
	require.False(t, changed)
	require.Len(t, tri.Mesh.Iterate(topology.DimFace), 1)
}

// Scenario 1: single triangle, one edge marked.
func TestRefine_SingleTriangleOneEdge(t *testing.T) {
	tri := fixtures.SingleTriangle()
	rt := &recordingTransfer{}
	r := refine.New(refine.Config{SizeField: newOnlyEdges(tri.E[0]), Solution: rt})

	changed, err := r.Refine(tri.Mesh)
	require.NoError(t, err)
	require.True(t, changed)

	sv := rt.vertexFor(tri.E[0])
	require.NotEqual(t, topology.Nil, sv)
	require.InDelta(t, 0.5, tri.Mesh.Point(sv).X, 1e-9)
	require.InDelta(t, 0.0, tri.Mesh.Point(sv).Y, 1e-9)

	faces := tri.Mesh.Iterate(topology.DimFace)
	require.Len(t, faces, 2)
	require.Equal(t, []topology.EntityID{tri.V[0], sv, tri.V[2]}, tri.Mesh.Down(faces[0]))
	require.Equal(t, []topology.EntityID{tri.V[2], sv, tri.V[1]}, tri.Mesh.Down(faces[1]))
}

// Scenario 2: single triangle, all three edges marked.
func TestRefine_SingleTriangleThreeEdges(t *testing.T) {
	tri := fixtures.SingleTriangle()
	rt := &recordingTransfer{}
	r := refine.New(refine.Config{SizeField: sizefield.NewUniform(0), Solution: rt})

	changed, err := r.Refine(tri.Mesh)
	require.NoError(t, err)
	require.True(t, changed)

	s01, s12, s20 := rt.vertexFor(tri.E[0]), rt.vertexFor(tri.E[1]), rt.vertexFor(tri.E[2])
	require.NotEqual(t, topology.Nil, s01)
	require.NotEqual(t, topology.Nil, s12)
	require.NotEqual(t, topology.Nil, s20)

	faces := tri.Mesh.Iterate(topology.DimFace)
	require.Len(t, faces, 4)
	require.Equal(t, []topology.EntityID{s01, s12, s20}, tri.Mesh.Down(faces[0]))
	require.Equal(t, []topology.EntityID{tri.V[0], s01, s20}, tri.Mesh.Down(faces[1]))
	require.Equal(t, []topology.EntityID{tri.V[1], s12, s01}, tri.Mesh.Down(faces[2]))
	require.Equal(t, []topology.EntityID{tri.V[2], s20, s12}, tri.Mesh.Down(faces[3]))
}

// Scenario 3: two triangles sharing an edge, the shared edge marked.
func TestRefine_TwoTrianglesSharedEdge(t *testing.T) {
	tt := fixtures.TwoTrianglesSharedEdge()
	rt := &recordingTransfer{}
	r := refine.New(refine.Config{SizeField: newOnlyEdges(tt.Shared), Solution: rt})

	changed, err := r.Refine(tt.Mesh)
	require.NoError(t, err)
	require.True(t, changed)

	sv := rt.vertexFor(tt.Shared)
	require.NotEqual(t, topology.Nil, sv)

	faces := tt.Mesh.Iterate(topology.DimFace)
	require.Len(t, faces, 4)
	for _, f := range faces {
		require.Contains(t, tt.Mesh.Down(f), sv)
	}
}

// Scenario 4: two peers sharing one edge, both mark it.
func TestRefine_TwoPeersSharedEdge(t *testing.T) {
	a, b, busA, busB := fixtures.TwoPeerSharedEdge()
	rtA, rtB := &recordingTransfer{}, &recordingTransfer{}

	rA := refine.New(refine.Config{SizeField: newOnlyEdges(a.E[0]), Solution: rtA, Bus: busA})
	rB := refine.New(refine.Config{SizeField: newOnlyEdges(b.E[0]), Solution: rtB, Bus: busB})

	var changedA, changedB bool
	var errA, errB error
	done := make(chan struct{}, 2)
	go func() { changedA, errA = rA.Refine(a.Mesh); done <- struct{}{} }()
	go func() { changedB, errB = rB.Refine(b.Mesh); done <- struct{}{} }()
	<-done
	<-done

	require.NoError(t, errA)
	require.NoError(t, errB)
	require.True(t, changedA)
	require.True(t, changedB)

	svA := rtA.vertexFor(a.E[0])
	svB := rtB.vertexFor(b.E[0])
	require.NotEqual(t, topology.Nil, svA)
	require.NotEqual(t, topology.Nil, svB)

	require.True(t, a.Mesh.IsShared(svA))
	require.Equal(t, svB, a.Mesh.Remotes(svA)[topology.PeerID(1)])
	require.True(t, b.Mesh.IsShared(svB))
	require.Equal(t, svA, b.Mesh.Remotes(svB)[topology.PeerID(0)])
}

// Scenario 5: tetrahedron, two adjacent edges marked.
func TestRefine_TetrahedronTwoAdjacentEdges(t *testing.T) {
	tet := fixtures.Tetrahedron()
	rt := &recordingTransfer{}
	r := refine.New(refine.Config{SizeField: newOnlyEdges(tet.E[0], tet.E[3]), Solution: rt})

	changed, err := r.Refine(tet.Mesh)
	require.NoError(t, err)
	require.True(t, changed)

	var regionCall *refineCall
	for i := range rt.refineCalls {
		if rt.refineCalls[i].Parent == tet.Region {
			regionCall = &rt.refineCalls[i]
		}
	}
	require.NotNil(t, regionCall)
	require.Len(t, regionCall.Children, 3)
	for _, c := range regionCall.Children {
		require.Equal(t, topology.Tet, tet.Mesh.Type(c))
	}

	regions := tet.Mesh.Iterate(topology.DimRegion)
	require.Len(t, regions, 3)
}

// Scenario 6: triangle with two edges marked; quadToTrisGeometric must pick
// the shorter diagonal deterministically.
func TestRefine_TwoEdgesGeometricTieBreak(t *testing.T) {
	m := memmesh.New(2)
	class := topology.GeomClass{Dim: topology.DimFace, Tag: 1}

	v0 := m.BuildVertex(class, topology.Point3{X: 0, Y: 0}, topology.Param{})
	v1 := m.BuildVertex(class, topology.Point3{X: 4, Y: 0}, topology.Param{})
	v2 := m.BuildVertex(class, topology.Point3{X: 0, Y: 1}, topology.Param{})

	e01 := m.BuildElement(v0, topology.Edge, []topology.EntityID{v0, v1})
	e12 := m.BuildElement(v1, topology.Edge, []topology.EntityID{v1, v2})
	_ = m.BuildElement(v2, topology.Edge, []topology.EntityID{v2, v0})
	_ = m.BuildElement(e01, topology.Tri, []topology.EntityID{v0, v1, v2})

	rt := &recordingTransfer{}
	r := refine.New(refine.Config{SizeField: newOnlyEdges(e01, e12), Solution: rt})

	changed, err := r.Refine(m)
	require.NoError(t, err)
	require.True(t, changed)

	s01 := rt.vertexFor(e01)
	s12 := rt.vertexFor(e12)
	require.NotEqual(t, topology.Nil, s01)
	require.NotEqual(t, topology.Nil, s12)

	faces := m.Iterate(topology.DimFace)
	require.Len(t, faces, 3)
	// corner triangle at v1, then the diagonalized remainder. v0-s12 (≈2.06)
	// is shorter than s01-v2 (≈2.24), so the remainder splits along the
	// v0-s12 diagonal: (v0,s01,s12) and (v0,s12,v2).
	require.Equal(t, []topology.EntityID{s01, v1, s12}, m.Down(faces[0]))
	require.Equal(t, []topology.EntityID{v0, s01, s12}, m.Down(faces[1]))
	require.Equal(t, []topology.EntityID{v0, s12, v2}, m.Down(faces[2]))
}
