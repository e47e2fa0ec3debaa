package fixtures

import (
	"github.com/katalvlaran/meshrefine/collective"
	"github.com/katalvlaran/meshrefine/topology"
	"github.com/katalvlaran/meshrefine/topology/memmesh"
)

// Triangle holds one triangular face and its three boundary vertices and
// edges, in the canonical order (v0,v1),(v1,v2),(v2,v0).
type Triangle struct {
	Mesh *memmesh.Mesh
	V    [3]topology.EntityID
	E    [3]topology.EntityID
	Face topology.EntityID
}

// SingleTriangle builds one triangle classified on model face tag 1.
func SingleTriangle() *Triangle {
	m := memmesh.New(2)
	return buildTriangle(m, topology.Point3{X: 0, Y: 0}, topology.Point3{X: 1, Y: 0}, topology.Point3{X: 0, Y: 1})
}

func buildTriangle(m *memmesh.Mesh, p0, p1, p2 topology.Point3) *Triangle {
	faceClass := topology.GeomClass{Dim: topology.DimFace, Tag: 1}

	v0 := m.BuildVertex(faceClass, p0, topology.Param{})
	v1 := m.BuildVertex(faceClass, p1, topology.Param{})
	v2 := m.BuildVertex(faceClass, p2, topology.Param{})

	e01 := m.BuildElement(v0, topology.Edge, []topology.EntityID{v0, v1})
	e12 := m.BuildElement(v1, topology.Edge, []topology.EntityID{v1, v2})
	e20 := m.BuildElement(v2, topology.Edge, []topology.EntityID{v2, v0})

	face := m.BuildElement(e01, topology.Tri, []topology.EntityID{v0, v1, v2})

	return &Triangle{Mesh: m, V: [3]topology.EntityID{v0, v1, v2}, E: [3]topology.EntityID{e01, e12, e20}, Face: face}
}

// TwoTriangles holds two triangles sharing edge Shared, used for the
// marked-edge-propagates-to-both-incident-faces scenario.
type TwoTriangles struct {
	Mesh   *memmesh.Mesh
	V      [4]topology.EntityID // v0,v1,v2 (tri A), v3 (tri B's apex)
	Shared topology.EntityID    // edge v0-v1
	FaceA  topology.EntityID    // (v0,v1,v2)
	FaceB  topology.EntityID    // (v1,v0,v3)
}

// TwoTrianglesSharedEdge builds two triangles glued along one edge.
func TwoTrianglesSharedEdge() *TwoTriangles {
	m := memmesh.New(2)
	faceClass := topology.GeomClass{Dim: topology.DimFace, Tag: 1}

	v0 := m.BuildVertex(faceClass, topology.Point3{X: 0, Y: 0}, topology.Param{})
	v1 := m.BuildVertex(faceClass, topology.Point3{X: 1, Y: 0}, topology.Param{})
	v2 := m.BuildVertex(faceClass, topology.Point3{X: 0, Y: 1}, topology.Param{})
	v3 := m.BuildVertex(faceClass, topology.Point3{X: 1, Y: -1}, topology.Param{})

	shared := m.BuildElement(v0, topology.Edge, []topology.EntityID{v0, v1})
	_ = m.BuildElement(v1, topology.Edge, []topology.EntityID{v1, v2})
	_ = m.BuildElement(v2, topology.Edge, []topology.EntityID{v2, v0})
	_ = m.BuildElement(v0, topology.Edge, []topology.EntityID{v1, v3})
	_ = m.BuildElement(v3, topology.Edge, []topology.EntityID{v3, v0})

	faceA := m.BuildElement(shared, topology.Tri, []topology.EntityID{v0, v1, v2})
	faceB := m.BuildElement(shared, topology.Tri, []topology.EntityID{v1, v0, v3})

	return &TwoTriangles{Mesh: m, V: [4]topology.EntityID{v0, v1, v2, v3}, Shared: shared, FaceA: faceA, FaceB: faceB}
}

// Tet holds a single tetrahedron and its downward entities.
type Tet struct {
	Mesh   *memmesh.Mesh
	V      [4]topology.EntityID
	E      [6]topology.EntityID // matches topology.Tet.EdgeVerts ordering
	Faces  [4]topology.EntityID
	Region topology.EntityID
}

// Tetrahedron builds one tet classified on model region tag 1.
func Tetrahedron() *Tet {
	m := memmesh.New(3)
	regionClass := topology.GeomClass{Dim: topology.DimRegion, Tag: 1}

	pts := [4]topology.Point3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1},
	}
	var v [4]topology.EntityID
	for i, p := range pts {
		v[i] = m.BuildVertex(regionClass, p, topology.Param{})
	}

	var e [6]topology.EntityID
	for i := 0; i < topology.Tet.NumEdges(); i++ {
		a, b := topology.Tet.EdgeVerts(i)
		e[i] = m.BuildElement(v[a], topology.Edge, []topology.EntityID{v[a], v[b]})
	}

	faceDown := [4][3]int{{0, 1, 2}, {0, 1, 3}, {1, 2, 3}, {2, 0, 3}}
	var faces [4]topology.EntityID
	for i, fd := range faceDown {
		faces[i] = m.BuildElement(v[fd[0]], topology.Tri, []topology.EntityID{v[fd[0]], v[fd[1]], v[fd[2]]})
	}

	region := m.BuildElement(v[0], topology.Tet, []topology.EntityID{v[0], v[1], v[2], v[3]})

	return &Tet{Mesh: m, V: v, E: e, Faces: faces, Region: region}
}

// TwoPeerSharedEdge builds two single-triangle meshes on separate
// collective.Bus peers, each sharing one edge with the other via AddRemote,
// for the remote-linker scenarios.
func TwoPeerSharedEdge() (a, b *Triangle, busA, busB collective.Bus) {
	buses := collective.NewInProcessBuses(2)
	busA, busB = buses[0], buses[1]

	ma := memmesh.New(2, memmesh.WithBus(busA))
	mb := memmesh.New(2, memmesh.WithBus(busB))

	a = buildTriangle(ma, topology.Point3{X: 0, Y: 0}, topology.Point3{X: 1, Y: 0}, topology.Point3{X: 0, Y: 1})
	b = buildTriangle(mb, topology.Point3{X: 0, Y: 0}, topology.Point3{X: 1, Y: 0}, topology.Point3{X: 0, Y: -1})

	ma.AddRemote(a.E[0], topology.PeerID(1), b.E[0])
	mb.AddRemote(b.E[0], topology.PeerID(0), a.E[0])

	return a, b, busA, busB
}
