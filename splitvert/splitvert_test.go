package splitvert_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshrefine/refstate"
	"github.com/katalvlaran/meshrefine/sizefield"
	"github.com/katalvlaran/meshrefine/splitvert"
	"github.com/katalvlaran/meshrefine/topology"
	"github.com/katalvlaran/meshrefine/topology/fixtures"
	"github.com/katalvlaran/meshrefine/transfer"
)

func TestMake_PlacesMidpoint(t *testing.T) {
	tri := fixtures.SingleTriangle()
	s := refstate.New(tri.Mesh)
	defer s.Close(tri.Mesh)

	sf := sizefield.NewUniform(0)
	v, err := splitvert.Make(tri.Mesh, tri.E[0], sf, transfer.NoOp{}, transfer.NoOp{}, s, false)
	require.NoError(t, err)

	got := tri.Mesh.Point(v)
	want := topology.Lerp(tri.Mesh.Point(tri.V[0]), tri.Mesh.Point(tri.V[1]), 0)
	require.InDelta(t, want.X, got.X, 1e-9)
	require.InDelta(t, want.Y, got.Y, 1e-9)
}

func TestMake_RejectsOutOfRangePlacement(t *testing.T) {
	tri := fixtures.SingleTriangle()
	s := refstate.New(tri.Mesh)
	defer s.Close(tri.Mesh)

	sf := &badPlacement{}
	_, err := splitvert.Make(tri.Mesh, tri.E[0], sf, transfer.NoOp{}, transfer.NoOp{}, s, false)
	require.Error(t, err)
}

type badPlacement struct{ sizefield.Uniform }

func (badPlacement) PlaceSplit(m topology.Mesh, edge topology.EntityID) (float64, error) {
	return 1.5, nil
}

func TestFindByParentAndByEndpoints(t *testing.T) {
	tri := fixtures.SingleTriangle()
	s := refstate.New(tri.Mesh)
	defer s.Close(tri.Mesh)

	sf := sizefield.NewUniform(0)
	v, err := splitvert.Make(tri.Mesh, tri.E[0], sf, transfer.NoOp{}, transfer.NoOp{}, s, false)
	require.NoError(t, err)

	tri.Mesh.SetIntTag(tri.E[0], s.NumberTag, 0)
	s.NewEntities[topology.DimEdge] = [][]topology.EntityID{{v}}

	require.Equal(t, v, splitvert.FindByParent(tri.Mesh, s, tri.E[0]))
	require.Equal(t, v, splitvert.FindByEndpoints(tri.Mesh, s, tri.V[0], tri.V[1]))
	require.Equal(t, v, splitvert.FindByEndpoints(tri.Mesh, s, tri.V[1], tri.V[0]))
}

func TestFindByParent_NotCollected(t *testing.T) {
	tri := fixtures.SingleTriangle()
	s := refstate.New(tri.Mesh)
	defer s.Close(tri.Mesh)

	require.Equal(t, topology.Nil, splitvert.FindByParent(tri.Mesh, s, tri.E[0]))
}

func TestFindPlaced_FlipsXiOnReversedOrder(t *testing.T) {
	tri := fixtures.SingleTriangle()
	s := refstate.New(tri.Mesh)
	defer s.Close(tri.Mesh)

	sf := sizefield.NewUniform(0)
	v, err := splitvert.Make(tri.Mesh, tri.E[0], sf, transfer.NoOp{}, transfer.NoOp{}, s, false)
	require.NoError(t, err)

	tri.Mesh.SetIntTag(tri.E[0], s.NumberTag, 0)
	s.NewEntities[topology.DimEdge] = [][]topology.EntityID{{v}}

	_, xiForward, err := splitvert.FindPlaced(tri.Mesh, s, tri.V[0], tri.V[1])
	require.NoError(t, err)
	_, xiReversed, err := splitvert.FindPlaced(tri.Mesh, s, tri.V[1], tri.V[0])
	require.NoError(t, err)

	require.InDelta(t, 1-xiForward, xiReversed, 1e-9)
}

func TestFindPlaced_NotFound(t *testing.T) {
	tri := fixtures.SingleTriangle()
	s := refstate.New(tri.Mesh)
	defer s.Close(tri.Mesh)

	_, _, err := splitvert.FindPlaced(tri.Mesh, s, tri.V[0], tri.V[2])
	require.ErrorIs(t, err, splitvert.ErrNotFound)
}
