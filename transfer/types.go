package transfer

import "github.com/katalvlaran/meshrefine/topology"

// Transfer is the shape of both the solution-transfer and shape-handler
// collaborators consulted by split-vertex construction and by the
// orchestrator's transferElements step.
type Transfer interface {
	// TransferDimension returns the minimum entity dimension this
	// collaborator wants new-entity collection for.
	TransferDimension() int

	// OnVertex is called once per new split vertex, with the local
	// parameter x ∈ [-1,1] it was placed at along edge.
	OnVertex(m topology.Mesh, edge topology.EntityID, x float64, newVertex topology.EntityID) error

	// OnRefine is called once per split parent at dimension ≥
	// TransferDimension(), after children exist, with parent's full set of
	// new children.
	OnRefine(m topology.Mesh, parent topology.EntityID, children []topology.EntityID) error
}

// NoOp is a Transfer that declines all collection and does nothing on
// every call. It is the default when a sweep configures no solution
// transfer or shape handler.
type NoOp struct{}

// TransferDimension implements Transfer. Returning a dimension beyond the
// mesh's top dimension means "never collect for me".
func (NoOp) TransferDimension() int { return 4 }

// OnVertex implements Transfer as a no-op.
func (NoOp) OnVertex(m topology.Mesh, edge topology.EntityID, x float64, newVertex topology.EntityID) error {
	return nil
}

// OnRefine implements Transfer as a no-op.
func (NoOp) OnRefine(m topology.Mesh, parent topology.EntityID, children []topology.EntityID) error {
	return nil
}
