// Package fixtures builds small, fully-wired topology.Mesh instances
// (single triangle, two triangles sharing an edge, a tetrahedron, and a
// two-peer shared edge) for end-to-end scenarios and package tests, the
// same canned-instance role a graph library's example-graph builder plays
// for its own algorithms.
package fixtures
