// Package remote implements the Remote Linker (§4.5): after local
// split-vertex construction, it exchanges (remote-parent-handle,
// local-split-vertex-handle) tuples over a collective.Bus so that every
// peer sharing a split parent entity agrees on the identity of the vertex
// that parent's bisection produced.
package remote
