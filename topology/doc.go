// Package topology defines the entity model and the Mesh oracle contract
// that the refinement core is built against.
//
//	EntityID    — opaque handle to a mesh entity
//	EntityType  — VERTEX/EDGE/TRI/QUAD/TET/HEX/PRISM/PYRAMID
//	GeomClass   — geometric-model classification inherited by children
//	Mesh        — the read-mostly oracle: adjacency, tags, flags, and the
//	              handful of controlled mutations (build/destroy/stitch)
//
// The core never implements Mesh; see topology/memmesh for a concrete
// in-memory implementation used by tests, and topology/fixtures for small
// canned meshes built on top of it.
package topology
