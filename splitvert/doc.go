// Package splitvert implements Split-Vertex Construction & Lookup (§4.4):
// creating the one new vertex a marked edge contributes, and the three
// ways the rest of the pipeline locates it again — by (dim,index), by
// parent edge, and by endpoint pair (order-insensitive, with the ξ flip
// that order reversal implies).
package splitvert
