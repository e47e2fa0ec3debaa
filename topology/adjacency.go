package topology

// VertsOf returns e's own vertex tuple: e itself if e is a Vertex, or its
// downward tuple otherwise. Every non-vertex entity's Down() is defined to
// be its direct ordered vertex tuple (not a one-level-down sub-entity
// list), so a face's down is its 3-or-4 vertices and a region's down is
// its 4-or-more vertices, matching EntityType.EdgeVerts' local indexing.
func VertsOf(m Mesh, e EntityID) []EntityID {
	if m.Type(e) == Vertex {
		return []EntityID{e}
	}
	return m.Down(e)
}

// Incident returns every live entity of dimension dim whose vertex tuple
// is a superset of verts, computed as the intersection of each vertex's
// upward adjacency set. This is how propagate finds the faces bounded by a
// marked edge and the regions bounded by a marked face, since Down() does
// not nest through intermediate dimensions.
func Incident(m Mesh, verts []EntityID, dim Dim) []EntityID {
	if len(verts) == 0 {
		return nil
	}
	candidates := m.Up(verts[0])
	for _, v := range verts[1:] {
		candidates = candidates.Intersect(m.Up(v))
	}

	var out []EntityID
	candidates.Each(func(c EntityID) bool {
		if m.Type(c).Dim() == dim {
			out = append(out, c)
		}
		return false
	})

	return out
}
