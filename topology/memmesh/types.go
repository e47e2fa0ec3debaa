package memmesh

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/meshrefine/collective"
	"github.com/katalvlaran/meshrefine/topology"
)

type entity struct {
	id    topology.EntityID
	typ   topology.EntityType
	down  []topology.EntityID
	up    mapset.Set[topology.EntityID]
	class topology.GeomClass
	flags topology.Flag
	point topology.Point3
	param topology.Param
}

// Mesh is a concrete, in-memory topology.Mesh.
type Mesh struct {
	dim  int
	bus  collective.Bus
	next uint64

	entities map[topology.EntityID]*entity
	byDim    [4][]topology.EntityID

	intTags    map[string]map[topology.EntityID]int
	doubleTags map[string]map[topology.EntityID]float64
	remotes    map[topology.EntityID]map[topology.PeerID]topology.EntityID
}

// Option configures a Mesh at construction time.
type Option func(*Mesh)

// WithBus attaches a collective.Bus so Reduce/PeerCount/Self reflect a
// multi-peer simulation instead of the single-peer default.
func WithBus(bus collective.Bus) Option {
	return func(m *Mesh) { m.bus = bus }
}

// New returns an empty Mesh of top dimension dim (2 or 3).
func New(dim int, opts ...Option) *Mesh {
	m := &Mesh{
		dim:        dim,
		entities:   make(map[topology.EntityID]*entity),
		intTags:    make(map[string]map[topology.EntityID]int),
		doubleTags: make(map[string]map[topology.EntityID]float64),
		remotes:    make(map[topology.EntityID]map[topology.PeerID]topology.EntityID),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
