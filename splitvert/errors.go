package splitvert

import "errors"

// ErrNotFound indicates a split-vertex lookup could not locate its edge or
// the edge's split vertex — the edge was never marked, or the vertex was
// already cleaned up (CleanSplitVerts already ran).
var ErrNotFound = errors.New("splitvert: split vertex not found")
