// Package meshrefine implements parallel, template-based local refinement
// of unstructured conforming meshes.
//
// 🚀 What is meshrefine?
//
//	A mesh-adaptation engine that turns a user-supplied size field into a
//	conforming, refined mesh while keeping any attached solution state
//	consistent across the change:
//
//	  • Entity/topology oracle: opaque handles over vertices, edges,
//	    faces and regions, with downward (ordered vertex tuples) and
//	    upward (unordered incidence) adjacency queries
//	  • Two-pass propagation: mark edges by size field, flood the mark
//	    to every entity whose closure it touches, then split
//	  • Template dispatch: per-entity-type lookup tables turn a marked
//	    edge mask into the exact set of child entities to build
//	  • Cross-peer stitching: split vertices on shared edges are linked
//	    between SPMD peers so the refined mesh stays conforming at
//	    partition boundaries
//
// ✨ Why choose meshrefine?
//
//   - Deterministic    — geometry-based tie-breaks, no randomness
//   - Conforming       — never leaves a hanging node on a shared edge
//   - Extensible       — SizeField and Transfer are pluggable interfaces
//   - Parallel-ready   — refinement is a pure function of a Bus, a Mesh
//     and local state; nothing assumes single-process execution
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	topology/   — Mesh oracle, entity/geometry types, in-memory implementation
//	mark/       — size-field-driven edge marking and cross-peer flag agreement
//	propagate/  — two-pass split propagation across entity dimensions
//	template/   — per-EntityType split templates and dispatch
//	splitvert/  — split-vertex construction, placement and lookup
//	remote/     — cross-peer split-vertex linking over a collective Bus
//	refstate/   — per-refinement-sweep bookkeeping (tags, collected state)
//	sizefield/  — SizeField implementations (uniform, pluggable)
//	transfer/   — Transfer implementations for carrying solution state
//	collective/ — the Bus abstraction and in-process SPMD simulation
//	refine/     — the orchestrator tying every stage into one sweep
//
// Quick ASCII example, one marked edge bisecting a triangle:
//
//	    v2                  v2
//	    /\                  /|\
//	   /  \      --->      / | \
//	  /    \              /  |  \
//	 v0----v1           v0--sv--v1
//
// Dive into DESIGN.md for the grounding behind each package's design and
// the libraries it builds on.
package meshrefine
