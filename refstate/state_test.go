package refstate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshrefine/refstate"
	"github.com/katalvlaran/meshrefine/topology"
	"github.com/katalvlaran/meshrefine/topology/memmesh"
)

func TestNewAllocatesTags(t *testing.T) {
	m := memmesh.New(2)
	s := refstate.New(m)
	defer s.Close(m)

	v := m.BuildVertex(topology.GeomClass{}, topology.Point3{}, topology.Param{})
	m.SetIntTag(v, s.NumberTag, 7)
	got, ok := m.GetIntTag(v, s.NumberTag)
	require.True(t, ok)
	require.Equal(t, 7, got)
}

func TestResetCollection(t *testing.T) {
	s := &refstate.State{}
	s.ShouldCollect = [4]bool{true, true, true, true}
	s.ResetCollection()
	require.Equal(t, [4]bool{false, true, false, false}, s.ShouldCollect)
}

func TestCollectForTransfer(t *testing.T) {
	s := &refstate.State{}
	s.ResetCollection()
	s.CollectForTransfer(2, 0)
	require.Equal(t, [4]bool{true, true, true, true}, s.ShouldCollect)
}

func TestCollectForTransfer_NoOpBeyondTop(t *testing.T) {
	s := &refstate.State{}
	s.ResetCollection()
	s.CollectForTransfer(4, 4)
	require.Equal(t, [4]bool{false, true, false, false}, s.ShouldCollect)
}

func TestCollectForMatching(t *testing.T) {
	s := &refstate.State{}
	s.ResetCollection()
	s.CollectForMatching(true, 3)
	require.Equal(t, [4]bool{false, true, true, false}, s.ShouldCollect)
}

func TestCollectForMatching_Disabled(t *testing.T) {
	s := &refstate.State{}
	s.ResetCollection()
	s.CollectForMatching(false, 3)
	require.Equal(t, [4]bool{false, true, false, false}, s.ShouldCollect)
}

func TestForgetNewEntities(t *testing.T) {
	s := &refstate.State{}
	s.NewEntities[topology.DimEdge] = [][]topology.EntityID{{1, 2}}
	s.ForgetNewEntities()
	for _, ne := range s.NewEntities {
		require.Nil(t, ne)
	}
}

func TestCleanSplitVerts(t *testing.T) {
	m := memmesh.New(2)
	s := refstate.New(m)
	defer s.Close(m)

	v := m.BuildVertex(topology.GeomClass{}, topology.Point3{}, topology.Param{})
	m.SetDoubleTag(v, s.VertPlaceTag, 0.5)
	s.NewEntities[topology.DimEdge] = [][]topology.EntityID{{v}}

	s.CleanSplitVerts(m)

	_, ok := m.GetDoubleTag(v, s.VertPlaceTag)
	require.False(t, ok)
}
