package transfer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshrefine/topology"
	"github.com/katalvlaran/meshrefine/transfer"
)

func TestNoOp_NeverCollects(t *testing.T) {
	var n transfer.Transfer = transfer.NoOp{}
	require.Greater(t, n.TransferDimension(), 3)
}

func TestNoOp_CallsAreInert(t *testing.T) {
	var n transfer.Transfer = transfer.NoOp{}
	require.NoError(t, n.OnVertex(nil, topology.Nil, 0, topology.Nil))
	require.NoError(t, n.OnRefine(nil, topology.Nil, nil))
}
