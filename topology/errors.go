package topology

import "errors"

// Sentinel errors for the topology oracle contract.
var (
	// ErrEntityNotFound indicates an operation referenced an unknown EntityID.
	ErrEntityNotFound = errors.New("topology: entity not found")

	// ErrNilEntity indicates Nil was passed where a live handle was required.
	ErrNilEntity = errors.New("topology: nil entity handle")

	// ErrTagNotSet indicates a tagged value was requested but never stamped.
	// splitvert.FindPlaced wraps this when a split vertex it located never
	// got its placement tag, which should only happen once CleanSplitVerts
	// has already run for that sweep.
	ErrTagNotSet = errors.New("topology: tag not set on entity")
)
