// Package memmesh is a small, in-memory implementation of topology.Mesh.
//
// It is a concrete, fully-owned data structure the rest of the module can
// be exercised against in tests and examples. It is not part of the
// refinement core itself — production callers bring their own Mesh, per
// §6 — but topology/fixtures and every package's tests build small meshes
// on top of it.
//
// memmesh is intentionally not safe for concurrent mutation: a sweep runs
// single-threaded within one peer (§5), so there is no lock-contention
// concern to design around. Each simulated peer in a multi-peer test owns
// its own *Mesh instance.
package memmesh
