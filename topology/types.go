// Package topology defines the entity model shared by the refinement core:
// opaque entity handles, entity types, geometric classification, and the
// Mesh oracle contract the rest of the module treats as an external
// collaborator (see the Mesh interface in mesh.go).
//
// Nothing in this package mutates a mesh; it only describes the shapes the
// core and the mesh substrate agree on.
package topology

import "fmt"

// EntityID is an opaque handle to a mesh entity. The refinement core never
// interprets its value; it is only ever produced and consumed by a Mesh
// implementation.
type EntityID uint64

// Nil is the zero handle, returned by lookups that find nothing.
const Nil EntityID = 0

// String renders the handle for logs and test failures.
func (e EntityID) String() string {
	return fmt.Sprintf("ent#%d", uint64(e))
}

// Dim is a mesh dimension: 0=vertex, 1=edge, 2=face, 3=region.
type Dim int

const (
	DimVertex Dim = 0
	DimEdge   Dim = 1
	DimFace   Dim = 2
	DimRegion Dim = 3
)

// EntityType enumerates the element shapes the core understands.
type EntityType int

const (
	Vertex EntityType = iota
	Edge
	Tri
	Quad
	Tet
	Hex
	Prism
	Pyramid
	numEntityTypes
)

func (t EntityType) String() string {
	switch t {
	case Vertex:
		return "VERTEX"
	case Edge:
		return "EDGE"
	case Tri:
		return "TRI"
	case Quad:
		return "QUAD"
	case Tet:
		return "TET"
	case Hex:
		return "HEX"
	case Prism:
		return "PRISM"
	case Pyramid:
		return "PYRAMID"
	default:
		return "UNKNOWN"
	}
}

// typeInfo holds the static shape data for one EntityType: dimension,
// vertex count, and the ordered (a,b) vertex-index pairs forming each of
// its downward edges. It is the single source of truth the template
// engine and memmesh both build on.
type typeInfo struct {
	dim      Dim
	numVerts int
	// edgeVerts[i] = (a,b): local vertex indices of downward edge i.
	edgeVerts [][2]int
}

var typeInfos = map[EntityType]typeInfo{
	Vertex: {dim: DimVertex, numVerts: 1},
	Edge:   {dim: DimEdge, numVerts: 2},
	Tri: {dim: DimFace, numVerts: 3, edgeVerts: [][2]int{
		{0, 1}, {1, 2}, {2, 0},
	}},
	Quad: {dim: DimFace, numVerts: 4, edgeVerts: [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
	}},
	Tet: {dim: DimRegion, numVerts: 4, edgeVerts: [][2]int{
		{0, 1}, {1, 2}, {2, 0}, {0, 3}, {1, 3}, {2, 3},
	}},
	Hex: {dim: DimRegion, numVerts: 8, edgeVerts: [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}},
	Prism: {dim: DimRegion, numVerts: 6, edgeVerts: [][2]int{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
		{0, 3}, {1, 4}, {2, 5},
	}},
	Pyramid: {dim: DimRegion, numVerts: 5, edgeVerts: [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{0, 4}, {1, 4}, {2, 4}, {3, 4},
	}},
}

// Dim returns the topological dimension of t.
func (t EntityType) Dim() Dim { return typeInfos[t].dim }

// NumVerts returns the number of downward vertices of t.
func (t EntityType) NumVerts() int { return typeInfos[t].numVerts }

// NumEdges returns the number of downward edges of t (0 for Vertex/Edge).
func (t EntityType) NumEdges() int { return len(typeInfos[t].edgeVerts) }

// EdgeVerts returns the (a,b) local-vertex-index pair of downward edge i,
// i.e. which of t's NumVerts() vertices bound edge i, in the canonical
// (unrotated) ordering used throughout the template package.
func (t EntityType) EdgeVerts(i int) (a, b int) {
	ev := typeInfos[t].edgeVerts[i]
	return ev[0], ev[1]
}

// GeomClass is the geometric-model classification carried by an entity:
// the (dimension, tag) pair identifying the model curve/surface/region it
// is associated with. Children inherit their parent's classification.
type GeomClass struct {
	Dim Dim
	Tag int
}

// IsValid reports whether c names an actual model entity rather than the
// zero value (unclassified).
func (c GeomClass) IsValid() bool { return c.Tag != 0 || c.Dim != 0 }

// Point3 is a spatial coordinate.
type Point3 struct {
	X, Y, Z float64
}

// Param is a geometric-model parametric coordinate (curve: U only; surface:
// U,V; region: unused).
type Param struct {
	U, V float64
}

// Lerp returns the point on the edge (p0,p1) at local parameter t (t in
// [-1,1], matching the edge's parametric map convention, t=-1 at p0 and
// t=1 at p1).
func Lerp(p0, p1 Point3, t float64) Point3 {
	s := (t + 1) / 2
	return Point3{
		X: p0.X + s*(p1.X-p0.X),
		Y: p0.Y + s*(p1.Y-p0.Y),
		Z: p0.Z + s*(p1.Z-p0.Z),
	}
}

// LerpParam interpolates a parametric coordinate the same way Lerp
// interpolates a spatial point, for the parametric-transfer path.
func LerpParam(p0, p1 Param, t float64) Param {
	s := (t + 1) / 2
	return Param{
		U: p0.U + s*(p1.U-p0.U),
		V: p0.V + s*(p1.V-p0.V),
	}
}
