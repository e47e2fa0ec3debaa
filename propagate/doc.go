// Package propagate implements Propagation & Indexing (§4.2): the two-pass
// algorithm that, given the marked edges, computes the closure of faces and
// regions incident to any marked edge, allocates State.ToSplit exactly, and
// stamps each propagated entity with its dense index.
package propagate
