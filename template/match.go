package template

import (
	"fmt"

	"github.com/katalvlaran/meshrefine/topology"
)

// VertLookup resolves the split vertex of an already-marked edge given its
// two endpoints, in either order. It is how template functions reach the
// vertices created earlier by splitvert without importing that package
// directly (splitvert in turn depends on topology, not template).
type VertLookup func(v0, v1 topology.EntityID) topology.EntityID

// Func is a template function: given the element's rotated vertex tuple,
// it builds and returns the child entities replacing parent.
type Func func(m topology.Mesh, parent topology.EntityID, v []topology.EntityID, sv VertLookup) []topology.EntityID

func computeMask(m topology.Mesh, t topology.EntityType, verts []topology.EntityID) int {
	mask := 0
	for i := 0; i < t.NumEdges(); i++ {
		a, b := t.EdgeVerts(i)
		edge := m.FindUpward(topology.Edge, []topology.EntityID{verts[a], verts[b]})
		if edge != topology.Nil && m.GetFlag(edge, topology.FlagSplit) {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

func rotate(verts []topology.EntityID, perm []int) []topology.EntityID {
	out := make([]topology.EntityID, len(perm))
	for i, p := range perm {
		out[i] = verts[p]
	}
	return out
}

// Dispatch implements the matching procedure of §4.3: compute parent's
// edge-split bitmask, look up its (index, rotation), rotate its vertex
// tuple into canonical order, and invoke the matching template.
func Dispatch(m topology.Mesh, parent topology.EntityID, sv VertLookup) ([]topology.EntityID, error) {
	t := m.Type(parent)
	verts := topology.VertsOf(m, parent)

	mask := computeMask(m, t, verts)
	entry := lookupCode(t, mask)
	if entry.Index < 0 {
		return nil, fmt.Errorf("%w: type=%s mask=%d", ErrIllegalMask, t, mask)
	}

	rotated := verts
	if perms, ok := rotations[t]; ok {
		rotated = rotate(verts, perms[entry.Rotation])
	}

	fn, ok := funcs[t][entry.Index]
	if !ok {
		return nil, fmt.Errorf("%w: type=%s index=%d has no template function", ErrIllegalMask, t, entry.Index)
	}

	return fn(m, parent, rotated, sv), nil
}

// SplitEdge bisects edge (endpoints v0, v1) into two child edges against
// the split vertex sv resolves for them. Dimension 1 has no variability to
// canonicalize — there is exactly one way to bisect a line — so it bypasses
// the code_match table entirely rather than forcing a one-entry Edge case
// through Dispatch.
func SplitEdge(m topology.Mesh, edge topology.EntityID, v0, v1 topology.EntityID, sv VertLookup) []topology.EntityID {
	return splitEdge(m, edge, []topology.EntityID{v0, v1}, sv)
}
