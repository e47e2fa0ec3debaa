package topology

import mapset "github.com/deckarep/golang-set/v2"

// PeerID identifies one participant in the fixed set of peer processes that
// take part in every sweep (§5: SPMD, blocking).
type PeerID int

// Flag is a single-bit mesh annotation. SPLIT carries its primary meaning
// on edges (must bisect) and is reused, within one sweep, as a visited-set
// marker on faces/regions during propagation (see package propagate).
type Flag uint8

const (
	// FlagSplit marks an entity selected for bisection (edges), or, during
	// propagation only, marks a face/region as already counted.
	FlagSplit Flag = 1 << iota
	// FlagDontSplit marks an edge the size-field oracle declined to split.
	FlagDontSplit
)

// IntTag and DoubleTag are keys returned by Mesh.CreateIntTag /
// Mesh.CreateDoubleTag. They are opaque outside the mesh substrate; the
// core only ever round-trips them through Set/Get/Destroy.
type IntTag struct{ name string }

type DoubleTag struct{ name string }

// Name returns the tag's creation-time name, useful for logging.
func (t IntTag) Name() string { return t.name }
func (t DoubleTag) Name() string { return t.name }

// NewIntTag and NewDoubleTag are constructors for Mesh implementations;
// callers of the core never construct a tag directly.
func NewIntTag(name string) IntTag       { return IntTag{name: name} }
func NewDoubleTag(name string) DoubleTag { return DoubleTag{name: name} }

// Mesh is the topology oracle: a thin, read-mostly interface over the
// external mesh data structure. The refinement core treats it as a
// collaborator (§6) — it never reaches into mesh internals, and the mesh
// substrate owns entity identity outside the controlled
// creation/destruction/tagging calls this interface exposes.
//
// Implementations must provide a stable entity iteration order within one
// sweep (§4.2 Determinism) and must keep upward/downward adjacency
// consistent with created/destroyed entities.
type Mesh interface {
	// Dimension returns the mesh's top dimension D (2 or 3).
	Dimension() int

	// Iterate returns every live entity of dimension d, in a stable order
	// for the duration of one sweep.
	Iterate(d Dim) []EntityID

	// Type returns e's entity type.
	Type(e EntityID) EntityType

	// Down returns e's ordered downward adjacency tuple.
	Down(e EntityID) []EntityID

	// Up returns e's unordered upward adjacency set.
	Up(e EntityID) mapset.Set[EntityID]

	// DownIndex returns the index of child within parent's downward
	// tuple, or -1 if child does not appear there.
	DownIndex(parent, child EntityID) int

	// FindUpward returns the unique entity of type t whose downward tuple
	// holds exactly the entities in down, in any order (an Edge is found
	// from (v0,v1) or (v1,v0)), or Nil if none exists.
	FindUpward(t EntityType, down []EntityID) EntityID

	// Classification returns e's geometric-model classification.
	Classification(e EntityID) GeomClass

	// GetFlag, SetFlag, ClearFlag manipulate a single-bit annotation.
	GetFlag(e EntityID, flag Flag) bool
	SetFlag(e EntityID, flag Flag)
	ClearFlag(e EntityID, flag Flag)

	// CreateIntTag / CreateDoubleTag allocate a fresh tag key scoped to
	// this mesh. DestroyTag releases it and clears all stamped values.
	CreateIntTag(name string) IntTag
	CreateDoubleTag(name string) DoubleTag
	DestroyTag(name string)

	SetIntTag(e EntityID, tag IntTag, v int)
	GetIntTag(e EntityID, tag IntTag) (int, bool)

	SetDoubleTag(e EntityID, tag DoubleTag, v float64)
	GetDoubleTag(e EntityID, tag DoubleTag) (float64, bool)
	RemoveDoubleTag(e EntityID, tag DoubleTag)

	// Point returns a vertex's spatial coordinate.
	Point(e EntityID) Point3

	// EvaluateEdge maps local parameter x (in [-1,1]) on edge to a
	// spatial point via the edge's parametric map.
	EvaluateEdge(edge EntityID, x float64) Point3

	// InterpolateParam returns the geometric-model parameter at local
	// parameter x on edge, for shouldTransferParametric callers.
	InterpolateParam(edge EntityID, x float64) Param

	// BuildVertex creates a new classified vertex at point with the given
	// model parameter.
	BuildVertex(class GeomClass, point Point3, param Param) EntityID

	// BuildElement creates a new entity of type t with the given ordered
	// downward vertices/edges, classified like parent.
	BuildElement(parent EntityID, t EntityType, down []EntityID) EntityID

	// Destroy removes e from the mesh. Only the orchestrator's
	// destroy-old-elements phase may call this on non-vertex entities.
	Destroy(e EntityID)

	// IsShared reports whether e has a remote copy on another peer.
	IsShared(e EntityID) bool

	// Remotes returns e's known remote copies, keyed by peer.
	Remotes(e EntityID) map[PeerID]EntityID

	// AddRemote registers remote as peer's copy of e.
	AddRemote(e EntityID, peer PeerID, remote EntityID)

	// Stitch re-derives upward adjacency across peers after remote
	// linking so it reaches the new children.
	Stitch()

	// Self returns this peer's own ID.
	Self() PeerID

	// PeerCount returns the number of participating peers (1 if serial).
	PeerCount() int

	// Reduce performs a collective sum of local across all peers.
	Reduce(local int64) int64
}
