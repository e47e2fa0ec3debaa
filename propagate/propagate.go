package propagate

import (
	"github.com/katalvlaran/meshrefine/refstate"
	"github.com/katalvlaran/meshrefine/topology"
)

// Propagate implements Propagation & Indexing (§4.2): given FlagSplit
// already set on marked edges, it computes the closure of incident faces
// and regions, allocates s.ToSplit exactly, and stamps every propagated
// entity with its dense s.NumberTag index.
//
// It runs in two passes over the same edge iteration order so the
// allocation in between can size ToSplit exactly rather than growing it.
func Propagate(m topology.Mesh, s *refstate.State) {
	edges := m.Iterate(topology.DimEdge)

	c1, c2, c3 := preAllocationPass(m, edges)

	s.ToSplit[topology.DimEdge] = make([]topology.EntityID, 0, c1)
	s.ToSplit[topology.DimFace] = make([]topology.EntityID, 0, c2)
	s.ToSplit[topology.DimRegion] = make([]topology.EntityID, 0, c3)

	postAllocationPass(m, s, edges)
}

// preAllocationPass counts marked edges and their closure of incident
// faces/regions, using FlagSplit itself as the visited marker on
// faces/regions to avoid an auxiliary set (§9 Flag reuse as visited-set).
func preAllocationPass(m topology.Mesh, edges []topology.EntityID) (c1, c2, c3 int) {
	for _, e := range edges {
		if !m.GetFlag(e, topology.FlagSplit) {
			continue
		}
		c1++

		verts := topology.VertsOf(m, e)
		for _, f := range topology.Incident(m, verts, topology.DimFace) {
			if m.GetFlag(f, topology.FlagSplit) {
				continue
			}
			m.SetFlag(f, topology.FlagSplit)
			c2++

			fverts := topology.VertsOf(m, f)
			for _, r := range topology.Incident(m, fverts, topology.DimRegion) {
				if m.GetFlag(r, topology.FlagSplit) {
					continue
				}
				m.SetFlag(r, topology.FlagSplit)
				c3++
			}
		}
	}

	return c1, c2, c3
}

// postAllocationPass walks the same edge order again, writing each
// propagated entity into s.ToSplit and stamping s.NumberTag. The visited
// flag on faces/regions is cleared here, the moment it is written, so the
// mesh leaves this phase with FlagSplit set on exactly the marked edges
// and nothing else.
func postAllocationPass(m topology.Mesh, s *refstate.State, edges []topology.EntityID) {
	for _, e := range edges {
		if !m.GetFlag(e, topology.FlagSplit) {
			continue
		}
		m.SetIntTag(e, s.NumberTag, len(s.ToSplit[topology.DimEdge]))
		s.ToSplit[topology.DimEdge] = append(s.ToSplit[topology.DimEdge], e)

		verts := topology.VertsOf(m, e)
		for _, f := range topology.Incident(m, verts, topology.DimFace) {
			if !m.GetFlag(f, topology.FlagSplit) {
				continue
			}
			m.ClearFlag(f, topology.FlagSplit)
			m.SetIntTag(f, s.NumberTag, len(s.ToSplit[topology.DimFace]))
			s.ToSplit[topology.DimFace] = append(s.ToSplit[topology.DimFace], f)

			fverts := topology.VertsOf(m, f)
			for _, r := range topology.Incident(m, fverts, topology.DimRegion) {
				if !m.GetFlag(r, topology.FlagSplit) {
					continue
				}
				m.ClearFlag(r, topology.FlagSplit)
				m.SetIntTag(r, s.NumberTag, len(s.ToSplit[topology.DimRegion]))
				s.ToSplit[topology.DimRegion] = append(s.ToSplit[topology.DimRegion], r)
			}
		}
	}
}
