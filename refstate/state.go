package refstate

import "github.com/katalvlaran/meshrefine/topology"

// State is the Refinement State described in §3: dense per-dimension lists
// of entities selected for splitting, their children once split, and the
// two tags that carry dense indices and split-vertex placement across the
// sweep's phases. Index 0 of ToSplit/NewEntities/ShouldCollect is vertices
// and is never populated (vertices are never "split"); ShouldCollect[0] may
// be set, but nothing collects children into NewEntities[0]. New split
// vertices are recorded among their edge's children in NewEntities[1].
type State struct {
	ToSplit       [4][]topology.EntityID
	NewEntities   [4][][]topology.EntityID
	ShouldCollect [4]bool

	NumberTag    topology.IntTag
	VertPlaceTag topology.DoubleTag
}

// New creates a fresh State and allocates its tags on m. Callers must call
// Close when the sweep completes so the tags do not outlive it.
func New(m topology.Mesh) *State {
	return &State{
		NumberTag:    m.CreateIntTag("refstate.number"),
		VertPlaceTag: m.CreateDoubleTag("refstate.vertPlace"),
	}
}

// Close releases the tags this State allocated on m. After Close, the
// State must not be used again.
func (s *State) Close(m topology.Mesh) {
	m.DestroyTag(s.NumberTag.Name())
	m.DestroyTag(s.VertPlaceTag.Name())
}

// ResetCollection sets ShouldCollect to the orchestrator's default
// (§4.6 step 4): edges always collected, nothing else by default.
func (s *State) ResetCollection() {
	s.ShouldCollect = [4]bool{false, true, false, false}
}

// CollectForTransfer merges in the collection requirement implied by the
// solution-transfer and shape-handler dimensions (§4.6 step 5): every
// dimension from min(solutionTD, shapeTD) upward must be collected so
// transferElements can walk each split parent's children.
func (s *State) CollectForTransfer(solutionTD, shapeTD int) {
	min := solutionTD
	if shapeTD < min {
		min = shapeTD
	}
	for d := min; d <= 3; d++ {
		if d >= 0 {
			s.ShouldCollect[d] = true
		}
	}
}

// CollectForMatching merges in the collection requirement implied by
// periodic-match propagation (§4.6 step 5): when enabled, dimensions
// 1..D-1 must be collected so matchNewElements can walk new entities below
// the top dimension.
func (s *State) CollectForMatching(enabled bool, topDim int) {
	if !enabled {
		return
	}
	for d := 1; d < topDim; d++ {
		s.ShouldCollect[d] = true
	}
}

// ForgetNewEntities clears NewEntities at every dimension (§4.6 step 12),
// releasing the per-sweep child lists once transfer and matching have
// consumed them.
func (s *State) ForgetNewEntities() {
	for d := range s.NewEntities {
		s.NewEntities[d] = nil
	}
}

// CleanSplitVerts removes VertPlaceTag from every new split vertex
// (§4.6 step 10 / P4). Only NewEntities[1] is scanned: a split vertex is
// always a child of an edge (toSplit[1]), so walking edges' children finds
// every split vertex exactly once without also visiting the vertices faces
// and regions may have collected as children.
func (s *State) CleanSplitVerts(m topology.Mesh) {
	for _, children := range s.NewEntities[topology.DimEdge] {
		for _, c := range children {
			if m.Type(c) == topology.Vertex {
				m.RemoveDoubleTag(c, s.VertPlaceTag)
			}
		}
	}
}
