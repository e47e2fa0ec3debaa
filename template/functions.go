package template

import "github.com/katalvlaran/meshrefine/topology"

// funcs maps (type, code_index) to the template function that implements
// it, for every dimension Dispatch serves. Edge bisection has its own
// entry point, SplitEdge, and is not part of this table. Index 0 is never
// populated: code_index 0 does not occur (mask 0 is always illegal, since
// propagation never admits a face/region with no marked edge in its
// closure).
var funcs = map[topology.EntityType]map[int]Func{
	topology.Tri: {
		1: splitTri1,
		2: splitTri2,
		3: splitTri3,
	},
	topology.Quad: {
		1: quadSplit1,
		3: quadSplit3,
	},
	topology.Tet: {
		1: tetSplit1,
		2: tetSplit2Adjacent,
	},
	topology.Prism: {
		1: prismSplit1,
		2: prismSplitUniform,
	},
	topology.Pyramid: {
		1: pyramidSplit1,
		2: pyramidSplitUniform,
	},
}

// splitEdge bisects an edge into (v0,sv) and (sv,v1).
func splitEdge(m topology.Mesh, parent topology.EntityID, v []topology.EntityID, sv VertLookup) []topology.EntityID {
	s := sv(v[0], v[1])
	e1 := m.BuildElement(parent, topology.Edge, []topology.EntityID{v[0], s})
	e2 := m.BuildElement(parent, topology.Edge, []topology.EntityID{s, v[1]})
	return []topology.EntityID{e1, e2}
}

// splitTri1: one edge split (canonical v0-v1). Produces (v0,sv,v2) and
// (v2,sv,v1).
func splitTri1(m topology.Mesh, parent topology.EntityID, v []topology.EntityID, sv VertLookup) []topology.EntityID {
	s01 := sv(v[0], v[1])
	t1 := m.BuildElement(parent, topology.Tri, []topology.EntityID{v[0], s01, v[2]})
	t2 := m.BuildElement(parent, topology.Tri, []topology.EntityID{v[2], s01, v[1]})
	return []topology.EntityID{t1, t2}
}

// splitTri2: two edges split (canonical v0-v1 and v1-v2). Produces the
// corner triangle at v1 plus a diagonalized quad over the remainder.
func splitTri2(m topology.Mesh, parent topology.EntityID, v []topology.EntityID, sv VertLookup) []topology.EntityID {
	s01 := sv(v[0], v[1])
	s12 := sv(v[1], v[2])

	corner := m.BuildElement(parent, topology.Tri, []topology.EntityID{s01, v[1], s12})
	rest := quadToTrisGeometric(m, parent, v[0], s01, s12, v[2])

	return append([]topology.EntityID{corner}, rest...)
}

// splitTri3: all three edges split. Produces the central triangle plus
// three corner triangles.
func splitTri3(m topology.Mesh, parent topology.EntityID, v []topology.EntityID, sv VertLookup) []topology.EntityID {
	s01 := sv(v[0], v[1])
	s12 := sv(v[1], v[2])
	s20 := sv(v[2], v[0])

	center := m.BuildElement(parent, topology.Tri, []topology.EntityID{s01, s12, s20})
	c0 := m.BuildElement(parent, topology.Tri, []topology.EntityID{v[0], s01, s20})
	c1 := m.BuildElement(parent, topology.Tri, []topology.EntityID{v[1], s12, s01})
	c2 := m.BuildElement(parent, topology.Tri, []topology.EntityID{v[2], s20, s12})

	return []topology.EntityID{center, c0, c1, c2}
}

// quadToTrisGeometric diagonalizes the quad (a,b,c,d), in order, into two
// triangles. It chooses the shorter of the two diagonals (a-c vs b-d) as a
// deterministic, orientation-preserving tie-break. The source's exact
// criterion was not present in the retrieved reference material (only its
// call site survived extraction); this mirrors the same shorter-diagonal
// rule used by common Delaunay-style quad splitting and is documented as
// a resolved open question rather than a verbatim port.
func quadToTrisGeometric(m topology.Mesh, parent topology.EntityID, a, b, c, d topology.EntityID) []topology.EntityID {
	pa, pb, pc, pd := m.Point(a), m.Point(b), m.Point(c), m.Point(d)

	acLen2 := sqDist(pa, pc)
	bdLen2 := sqDist(pb, pd)

	if acLen2 <= bdLen2 {
		t1 := m.BuildElement(parent, topology.Tri, []topology.EntityID{a, b, c})
		t2 := m.BuildElement(parent, topology.Tri, []topology.EntityID{a, c, d})
		return []topology.EntityID{t1, t2}
	}

	t1 := m.BuildElement(parent, topology.Tri, []topology.EntityID{a, b, d})
	t2 := m.BuildElement(parent, topology.Tri, []topology.EntityID{b, c, d})
	return []topology.EntityID{t1, t2}
}

func sqDist(p, q topology.Point3) float64 {
	dx, dy, dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z
	return dx*dx + dy*dy + dz*dz
}

// quadSplit1: one edge split (canonical v0-v1). Produces (v0,sv,v3) plus
// the diagonalized remainder quad(sv,v1,v2,v3).
func quadSplit1(m topology.Mesh, parent topology.EntityID, v []topology.EntityID, sv VertLookup) []topology.EntityID {
	s01 := sv(v[0], v[1])
	corner := m.BuildElement(parent, topology.Tri, []topology.EntityID{v[0], s01, v[3]})
	rest := quadToTrisGeometric(m, parent, s01, v[1], v[2], v[3])
	return append([]topology.EntityID{corner}, rest...)
}

// quadSplit3: all four edges split. Produces a central quad over the four
// split vertices plus four corner triangles, with no new interior vertex
// (only bisection of marked edges creates vertices, per the design's
// Non-goals).
func quadSplit3(m topology.Mesh, parent topology.EntityID, v []topology.EntityID, sv VertLookup) []topology.EntityID {
	s := [4]topology.EntityID{
		sv(v[0], v[1]),
		sv(v[1], v[2]),
		sv(v[2], v[3]),
		sv(v[3], v[0]),
	}

	center := m.BuildElement(parent, topology.Quad, []topology.EntityID{s[0], s[1], s[2], s[3]})

	out := []topology.EntityID{center}
	for i := 0; i < 4; i++ {
		prev := s[(i+3)%4]
		corner := m.BuildElement(parent, topology.Tri, []topology.EntityID{v[i], s[i], prev})
		out = append(out, corner)
	}
	return out
}

// tetSplit1: one edge split (canonical v0-v1). Bisects into two tets
// sharing the face (sv,v2,v3).
func tetSplit1(m topology.Mesh, parent topology.EntityID, v []topology.EntityID, sv VertLookup) []topology.EntityID {
	s01 := sv(v[0], v[1])
	t1 := m.BuildElement(parent, topology.Tet, []topology.EntityID{v[0], s01, v[2], v[3]})
	t2 := m.BuildElement(parent, topology.Tet, []topology.EntityID{s01, v[1], v[2], v[3]})
	return []topology.EntityID{t1, t2}
}

// tetSplit2Adjacent: two adjacent edges split, canonical v0-v1 and v0-v3
// (sharing vertex v0, v2 uninvolved). Produces three tets.
func tetSplit2Adjacent(m topology.Mesh, parent topology.EntityID, v []topology.EntityID, sv VertLookup) []topology.EntityID {
	s01 := sv(v[0], v[1])
	s03 := sv(v[0], v[3])

	t1 := m.BuildElement(parent, topology.Tet, []topology.EntityID{v[0], s01, v[2], s03})
	t2 := m.BuildElement(parent, topology.Tet, []topology.EntityID{s01, v[1], v[2], v[3]})
	t3 := m.BuildElement(parent, topology.Tet, []topology.EntityID{s01, v[2], v[3], s03})

	return []topology.EntityID{t1, t2, t3}
}

// prismSplit1: one vertical edge split, canonical v0-v3 (bottom triangle
// v0,v1,v2; top triangle v3,v4,v5; vi corresponds to vi+3). The standard
// (0,1,2,3)-(1,2,3,4)-(2,3,4,5) decomposition of a prism into three tets
// puts the marked edge entirely inside the first sub-tet, so only that one
// needs bisecting, by the same two-children construction as tetSplit1; the
// other two sub-tets carry through unchanged.
func prismSplit1(m topology.Mesh, parent topology.EntityID, v []topology.EntityID, sv VertLookup) []topology.EntityID {
	s03 := sv(v[0], v[3])

	t1 := m.BuildElement(parent, topology.Tet, []topology.EntityID{v[0], s03, v[1], v[2]})
	t2 := m.BuildElement(parent, topology.Tet, []topology.EntityID{s03, v[3], v[1], v[2]})
	t3 := m.BuildElement(parent, topology.Tet, []topology.EntityID{v[1], v[2], v[3], v[4]})
	t4 := m.BuildElement(parent, topology.Tet, []topology.EntityID{v[2], v[3], v[4], v[5]})

	return []topology.EntityID{t1, t2, t3, t4}
}

// prismSplitUniform: all three vertical edges split. Bisects the prism
// across its mid-height triangle into two similar prisms, with no diagonal
// choice to make.
func prismSplitUniform(m topology.Mesh, parent topology.EntityID, v []topology.EntityID, sv VertLookup) []topology.EntityID {
	s0 := sv(v[0], v[3])
	s1 := sv(v[1], v[4])
	s2 := sv(v[2], v[5])

	bottom := m.BuildElement(parent, topology.Prism, []topology.EntityID{v[0], v[1], v[2], s0, s1, s2})
	top := m.BuildElement(parent, topology.Prism, []topology.EntityID{s0, s1, s2, v[3], v[4], v[5]})

	return []topology.EntityID{bottom, top}
}

// pyramidSplit1: one lateral edge split, canonical v0-v4 (quad base
// v0,v1,v2,v3; apex v4). The fixed diagonal (v0,v2) decomposes the pyramid
// into tets (v0,v1,v2,v4) and (v0,v2,v3,v4); the marked edge (v0,v4) is
// shared by both, so both get bisected by the tetSplit1 construction
// against the same split vertex.
func pyramidSplit1(m topology.Mesh, parent topology.EntityID, v []topology.EntityID, sv VertLookup) []topology.EntityID {
	s04 := sv(v[0], v[4])

	t1 := m.BuildElement(parent, topology.Tet, []topology.EntityID{v[0], s04, v[1], v[2]})
	t2 := m.BuildElement(parent, topology.Tet, []topology.EntityID{s04, v[4], v[1], v[2]})
	t3 := m.BuildElement(parent, topology.Tet, []topology.EntityID{v[0], s04, v[2], v[3]})
	t4 := m.BuildElement(parent, topology.Tet, []topology.EntityID{s04, v[4], v[2], v[3]})

	return []topology.EntityID{t1, t2, t3, t4}
}

// pyramidSplitUniform: all four lateral edges split. Produces a smaller
// pyramid at the apex over the four split vertices, plus four tets filling
// the frustum shell between the original and inner base quads.
func pyramidSplitUniform(m topology.Mesh, parent topology.EntityID, v []topology.EntityID, sv VertLookup) []topology.EntityID {
	s := [4]topology.EntityID{
		sv(v[0], v[4]),
		sv(v[1], v[4]),
		sv(v[2], v[4]),
		sv(v[3], v[4]),
	}

	inner := m.BuildElement(parent, topology.Pyramid, []topology.EntityID{s[0], s[1], s[2], s[3], v[4]})

	out := []topology.EntityID{inner}
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		t := m.BuildElement(parent, topology.Tet, []topology.EntityID{v[i], v[j], s[i], s[j]})
		out = append(out, t)
	}
	return out
}
