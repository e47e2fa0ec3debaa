// Package refine implements the Orchestrator (§4.6): it wires the
// topology oracle together with the size-field, solution-transfer and
// shape-handler collaborators and drives the fixed refinement pipeline —
// mark, propagate, split, link, transfer, destroy, clean, snap — for one
// sweep, reporting timing and a marked-edge count through structured
// logging and Prometheus metrics.
package refine
