package template

import "github.com/katalvlaran/meshrefine/topology"

// CodeEntry is one code_match table cell: the canonical template id to
// invoke and the rotation of the element's downward vertices that brings
// its actual edge-split pattern into that template's canonical form.
// Index -1 means the bitmask is illegal for this type.
type CodeEntry struct {
	Index    int
	Rotation int
}

var illegal = CodeEntry{Index: -1}

// rotationsTri holds the 3 cyclic rotations of a triangle's local vertex
// indices (0,1,2), matching Tri.EdgeVerts' e0=(0,1), e1=(1,2), e2=(2,0).
var rotationsTri = [][]int{
	{0, 1, 2},
	{1, 2, 0},
	{2, 0, 1},
}

// codeMatchTri: 2^3 = 8 masks over (e0,e1,e2).
var codeMatchTri = map[int]CodeEntry{
	0: illegal,
	1: {Index: 1, Rotation: 0}, // e0 only
	2: {Index: 1, Rotation: 1}, // e1 only
	4: {Index: 1, Rotation: 2}, // e2 only
	3: {Index: 2, Rotation: 0}, // e0,e1
	5: {Index: 2, Rotation: 2}, // e0,e2
	6: {Index: 2, Rotation: 1}, // e1,e2
	7: {Index: 3, Rotation: 0}, // all three
}

// rotationsQuad holds the 4 cyclic rotations of a quad's local vertex
// indices, matching Quad.EdgeVerts' e0=(0,1)..e3=(3,0).
var rotationsQuad = [][]int{
	{0, 1, 2, 3},
	{1, 2, 3, 0},
	{2, 3, 0, 1},
	{3, 0, 1, 2},
}

// codeMatchQuad supports single-edge bisection and uniform four-edge
// split only; any other combination (two or three edges marked) is
// illegal.
var codeMatchQuad = map[int]CodeEntry{
	0:  illegal,
	1:  {Index: 1, Rotation: 0}, // e0
	2:  {Index: 1, Rotation: 1}, // e1
	4:  {Index: 1, Rotation: 2}, // e2
	8:  {Index: 1, Rotation: 3}, // e3
	15: {Index: 3, Rotation: 0}, // all four
}

// rotationsTet holds the local-vertex permutations used by the Tet
// templates below, indexed by the Rotation field. Permutation i means the
// template sees rotated vertex j = original vertex perm[j].
var rotationsTet = [][]int{
	{0, 1, 2, 3}, // 0
	{1, 2, 0, 3}, // 1
	{2, 0, 1, 3}, // 2
	{0, 3, 1, 2}, // 3
	{1, 3, 0, 2}, // 4
	{2, 3, 0, 1}, // 5
	{0, 1, 3, 2}, // 6
	{0, 2, 1, 3}, // 7
	{1, 0, 3, 2}, // 8
	{1, 0, 2, 3}, // 9
	{2, 1, 3, 0}, // 10
	{2, 1, 0, 3}, // 11
	{3, 0, 2, 1}, // 12
	{3, 0, 1, 2}, // 13
	{3, 1, 0, 2}, // 14
}

// codeMatchTet supports single-edge bisection (tetSplit1) and
// two-adjacent-edge split (tetSplit2Adjacent) only. Opposite-edge pairs,
// arbitrary triples/quadruples/quintuples, and the full six-edge "red
// refinement" case are illegal — see DESIGN.md.
var codeMatchTet = map[int]CodeEntry{
	0: illegal,

	// single edge
	1:  {Index: 1, Rotation: 0},
	2:  {Index: 1, Rotation: 1},
	4:  {Index: 1, Rotation: 2},
	8:  {Index: 1, Rotation: 3},
	16: {Index: 1, Rotation: 4},
	32: {Index: 1, Rotation: 5},

	// adjacent pairs (share a vertex)
	5:  {Index: 2, Rotation: 6},
	9:  {Index: 2, Rotation: 0},
	12: {Index: 2, Rotation: 7},
	3:  {Index: 2, Rotation: 8},
	17: {Index: 2, Rotation: 9},
	18: {Index: 2, Rotation: 1},
	6:  {Index: 2, Rotation: 10},
	34: {Index: 2, Rotation: 11},
	36: {Index: 2, Rotation: 2},
	24: {Index: 2, Rotation: 12},
	40: {Index: 2, Rotation: 13},
	48: {Index: 2, Rotation: 14},
}

// rotationsPrism cyclically relabels a prism's two triangular ends
// together, keeping the 0..2 <-> 3..5 layer correspondence (local vertex i
// on the bottom triangle always corresponds to local vertex i+3 on the
// top), matching Prism.EdgeVerts' vertical edges e6=(0,3), e7=(1,4),
// e8=(2,5).
var rotationsPrism = [][]int{
	{0, 1, 2, 3, 4, 5},
	{1, 2, 0, 4, 5, 3},
	{2, 0, 1, 5, 3, 4},
}

// codeMatchPrism supports single-vertical-edge bisection (prismSplit1) and
// uniform three-vertical-edge split (prismSplitUniform) only. Marking a
// base-triangle edge alone, or any other combination, is illegal.
var codeMatchPrism = map[int]CodeEntry{
	0:   illegal,
	64:  {Index: 1, Rotation: 0}, // e6 = (0,3)
	128: {Index: 1, Rotation: 1}, // e7 = (1,4)
	256: {Index: 1, Rotation: 2}, // e8 = (2,5)
	448: {Index: 2, Rotation: 0}, // e6,e7,e8 together
}

// rotationsPyramid cyclically relabels a pyramid's quad base, keeping the
// apex (local vertex 4) fixed, matching Pyramid.EdgeVerts' lateral edges
// e4=(0,4), e5=(1,4), e6=(2,4), e7=(3,4).
var rotationsPyramid = [][]int{
	{0, 1, 2, 3, 4},
	{1, 2, 3, 0, 4},
	{2, 3, 0, 1, 4},
	{3, 0, 1, 2, 4},
}

// codeMatchPyramid supports single-lateral-edge bisection (pyramidSplit1)
// and uniform four-lateral-edge split (pyramidSplitUniform) only. Marking
// a base edge alone, or any other combination, is illegal.
var codeMatchPyramid = map[int]CodeEntry{
	0:   illegal,
	16:  {Index: 1, Rotation: 0}, // e4 = (0,4)
	32:  {Index: 1, Rotation: 1}, // e5 = (1,4)
	64:  {Index: 1, Rotation: 2}, // e6 = (2,4)
	128: {Index: 1, Rotation: 3}, // e7 = (3,4)
	240: {Index: 2, Rotation: 0}, // all four lateral edges together
}

// codeMatch and rotations are the per-type dispatch tables. Hex has no
// entry: every mask for it is illegal.
var codeMatch = map[topology.EntityType]map[int]CodeEntry{
	topology.Tri:     codeMatchTri,
	topology.Quad:    codeMatchQuad,
	topology.Tet:     codeMatchTet,
	topology.Prism:   codeMatchPrism,
	topology.Pyramid: codeMatchPyramid,
}

var rotations = map[topology.EntityType][][]int{
	topology.Tri:     rotationsTri,
	topology.Quad:    rotationsQuad,
	topology.Tet:     rotationsTet,
	topology.Prism:   rotationsPrism,
	topology.Pyramid: rotationsPyramid,
}

func lookupCode(t topology.EntityType, mask int) CodeEntry {
	if table, ok := codeMatch[t]; ok {
		if e, ok2 := table[mask]; ok2 {
			return e
		}
	}
	return illegal
}
