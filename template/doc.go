// Package template implements the Template Engine (§4.3): per-entity-type
// tables mapping a rotation-normalized edge-split bitmask to a canonical
// template index and a vertex rotation, plus the template functions
// themselves that build child entities from a split element's vertices and
// its marked edges' split vertices.
//
// Supported templates: Edge bisection; Triangle one/two/three-edge split;
// Quad one-edge and four-edge split. Tet supports one-edge and
// two-adjacent-edge split; the opposite-edge-pair and full six-edge
// (red refinement) cases are not implemented — see DESIGN.md. Prism
// supports one-vertical-edge and uniform three-vertical-edge split; Pyramid
// supports one-lateral-edge and uniform four-lateral-edge split — both via
// a fixed tet decomposition, same as Tet's single-edge case. Hex is the
// only type with no templates at all: every mask for it is illegal.
package template
