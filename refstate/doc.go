// Package refstate holds the Refinement State (§3): the per-sweep buffers
// and tags the orchestrator threads through mark, propagate, template,
// splitvert and remote. A State is created at sweep start and torn down at
// sweep end; nothing outside the orchestrator's fixed phases mutates it.
package refstate
