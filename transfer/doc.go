// Package transfer defines the solution-transfer / shape-handler contract
// (§6): the external collaborators that interpolate field values and
// geometric shape data onto newly created entities. Both roles share one
// interface shape, since solution transfer and shape handling are
// interchangeable Transfer instances from the orchestrator's perspective.
package transfer
