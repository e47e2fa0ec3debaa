package propagate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshrefine/propagate"
	"github.com/katalvlaran/meshrefine/refstate"
	"github.com/katalvlaran/meshrefine/topology"
	"github.com/katalvlaran/meshrefine/topology/fixtures"
)

func TestPropagate_SingleEdgeIndexesEdgeAndFace(t *testing.T) {
	tri := fixtures.SingleTriangle()
	s := refstate.New(tri.Mesh)
	defer s.Close(tri.Mesh)

	tri.Mesh.SetFlag(tri.E[0], topology.FlagSplit)

	propagate.Propagate(tri.Mesh, s)

	require.Equal(t, []topology.EntityID{tri.E[0]}, s.ToSplit[topology.DimEdge])
	require.Equal(t, []topology.EntityID{tri.Face}, s.ToSplit[topology.DimFace])
	require.False(t, tri.Mesh.GetFlag(tri.Face, topology.FlagSplit), "visited flag must be cleared after indexing")

	idx, ok := tri.Mesh.GetIntTag(tri.E[0], s.NumberTag)
	require.True(t, ok)
	require.Zero(t, idx)

	fidx, ok := tri.Mesh.GetIntTag(tri.Face, s.NumberTag)
	require.True(t, ok)
	require.Zero(t, fidx)
}

func TestPropagate_MarkedEdgeReachesBothIncidentFaces(t *testing.T) {
	tt := fixtures.TwoTrianglesSharedEdge()
	s := refstate.New(tt.Mesh)
	defer s.Close(tt.Mesh)

	tt.Mesh.SetFlag(tt.Shared, topology.FlagSplit)

	propagate.Propagate(tt.Mesh, s)

	require.ElementsMatch(t, []topology.EntityID{tt.FaceA, tt.FaceB}, s.ToSplit[topology.DimFace])
	require.False(t, tt.Mesh.GetFlag(tt.FaceA, topology.FlagSplit))
	require.False(t, tt.Mesh.GetFlag(tt.FaceB, topology.FlagSplit))
}

func TestPropagate_ReachesIncidentRegion(t *testing.T) {
	tet := fixtures.Tetrahedron()
	s := refstate.New(tet.Mesh)
	defer s.Close(tet.Mesh)

	tet.Mesh.SetFlag(tet.E[0], topology.FlagSplit)

	propagate.Propagate(tet.Mesh, s)

	require.Equal(t, []topology.EntityID{tet.Region}, s.ToSplit[topology.DimRegion])
	require.False(t, tet.Mesh.GetFlag(tet.Region, topology.FlagSplit))
}

func TestPropagate_NoMarkedEdgesIsEmpty(t *testing.T) {
	tri := fixtures.SingleTriangle()
	s := refstate.New(tri.Mesh)
	defer s.Close(tri.Mesh)

	propagate.Propagate(tri.Mesh, s)

	require.Empty(t, s.ToSplit[topology.DimEdge])
	require.Empty(t, s.ToSplit[topology.DimFace])
}
