package splitvert

import (
	"fmt"

	"github.com/katalvlaran/meshrefine/refstate"
	"github.com/katalvlaran/meshrefine/sizefield"
	"github.com/katalvlaran/meshrefine/topology"
	"github.com/katalvlaran/meshrefine/transfer"
)

// Make implements makeSplitVert (§4.4 steps 1-7): place the split point
// via sf, evaluate edge's parametric map there, classify the new vertex on
// edge's model entity, stamp its placement, and run the oracle/transfer
// hooks that define the vertex's field data.
func Make(
	m topology.Mesh,
	edge topology.EntityID,
	sf sizefield.SizeField,
	solution, shape transfer.Transfer,
	s *refstate.State,
	shouldTransferParametric bool,
) (topology.EntityID, error) {
	xi, err := sf.PlaceSplit(m, edge)
	if err != nil {
		return topology.Nil, err
	}
	if xi < 0 || xi > 1 {
		return topology.Nil, fmt.Errorf("%w: ξ=%v", sizefield.ErrInvalidPlacement, xi)
	}

	x := 2*xi - 1
	point := m.EvaluateEdge(edge, x)

	var param topology.Param
	if shouldTransferParametric {
		param = m.InterpolateParam(edge, x)
	}

	v := m.BuildVertex(m.Classification(edge), point, param)
	m.SetDoubleTag(v, s.VertPlaceTag, xi)

	if err := sf.Interpolate(m, edge, x, v); err != nil {
		return topology.Nil, err
	}
	if err := solution.OnVertex(m, edge, x, v); err != nil {
		return topology.Nil, err
	}
	if err := shape.OnVertex(m, edge, x, v); err != nil {
		return topology.Nil, err
	}

	return v, nil
}

// FindByIndex returns the split vertex among the children collected for
// toSplit[1][index], or Nil if none was collected there.
func FindByIndex(m topology.Mesh, s *refstate.State, index int) topology.EntityID {
	if index < 0 || index >= len(s.NewEntities[topology.DimEdge]) {
		return topology.Nil
	}
	for _, c := range s.NewEntities[topology.DimEdge][index] {
		if m.Type(c) == topology.Vertex {
			return c
		}
	}
	return topology.Nil
}

// FindByParent returns edge's split vertex via its NumberTag index, or Nil
// if edge is not an Edge or has no collected split vertex.
func FindByParent(m topology.Mesh, s *refstate.State, edge topology.EntityID) topology.EntityID {
	if m.Type(edge) != topology.Edge {
		return topology.Nil
	}
	idx, ok := m.GetIntTag(edge, s.NumberTag)
	if !ok {
		return topology.Nil
	}
	return FindByIndex(m, s, idx)
}

// FindByEndpoints locates the edge spanning (v0,v1) in either order, then
// its split vertex.
func FindByEndpoints(m topology.Mesh, s *refstate.State, v0, v1 topology.EntityID) topology.EntityID {
	edge := m.FindUpward(topology.Edge, []topology.EntityID{v0, v1})
	if edge == topology.Nil {
		return topology.Nil
	}
	return FindByParent(m, s, edge)
}

// FindPlaced implements findPlacedSplitVert (§4.4, P5): locate the split
// vertex of the edge spanning (v0,v1) and return its placement ξ, flipped
// to 1-ξ when the caller's order is reversed from the edge's own stored
// (down[0],down[1]) order. The order check is down-index-driven — it asks
// the edge which of its two slots v0 occupies — rather than comparing
// the down tuple directly, so it keeps working if a future Mesh
// implementation stores edge endpoints in some other internal form.
func FindPlaced(m topology.Mesh, s *refstate.State, v0, v1 topology.EntityID) (topology.EntityID, float64, error) {
	edge := m.FindUpward(topology.Edge, []topology.EntityID{v0, v1})
	if edge == topology.Nil {
		return topology.Nil, 0, ErrNotFound
	}

	sv := FindByParent(m, s, edge)
	if sv == topology.Nil {
		return topology.Nil, 0, ErrNotFound
	}

	xi, ok := m.GetDoubleTag(sv, s.VertPlaceTag)
	if !ok {
		return topology.Nil, 0, fmt.Errorf("%w: %w", ErrNotFound, topology.ErrTagNotSet)
	}

	if m.DownIndex(edge, v0) == 1 {
		xi = 1 - xi
	}

	return sv, xi, nil
}
