package memmesh

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/meshrefine/topology"
)

func (m *Mesh) alloc() topology.EntityID {
	m.next++
	return topology.EntityID(m.next)
}

// Dimension implements topology.Mesh.
func (m *Mesh) Dimension() int { return m.dim }

// Iterate implements topology.Mesh. Order is insertion order, which is
// stable for the duration of a sweep since entities are only appended to
// or removed from byDim[d] by BuildElement/BuildVertex/Destroy.
func (m *Mesh) Iterate(d topology.Dim) []topology.EntityID {
	out := make([]topology.EntityID, len(m.byDim[d]))
	copy(out, m.byDim[d])
	return out
}

func (m *Mesh) mustGet(e topology.EntityID) *entity {
	if e == topology.Nil {
		panic(topology.ErrNilEntity)
	}
	ent, ok := m.entities[e]
	if !ok {
		panic(topology.ErrEntityNotFound)
	}
	return ent
}

// Type implements topology.Mesh.
func (m *Mesh) Type(e topology.EntityID) topology.EntityType { return m.mustGet(e).typ }

// Down implements topology.Mesh.
func (m *Mesh) Down(e topology.EntityID) []topology.EntityID {
	ent := m.mustGet(e)
	out := make([]topology.EntityID, len(ent.down))
	copy(out, ent.down)
	return out
}

// Up implements topology.Mesh.
func (m *Mesh) Up(e topology.EntityID) mapset.Set[topology.EntityID] {
	return m.mustGet(e).up.Clone()
}

// DownIndex implements topology.Mesh.
func (m *Mesh) DownIndex(parent, child topology.EntityID) int {
	for i, d := range m.mustGet(parent).down {
		if d == child {
			return i
		}
	}
	return -1
}

// FindUpward implements topology.Mesh by intersecting the upward sets of
// every entity in down and filtering for type t and an exact (unordered)
// downward-set match, so it is insensitive to the caller's vertex order —
// matching the "locate via adjacency, must be unique" contract in §4.4.
func (m *Mesh) FindUpward(t topology.EntityType, down []topology.EntityID) topology.EntityID {
	if len(down) == 0 {
		return topology.Nil
	}
	candidates := m.mustGet(down[0]).up.Clone()
	for _, d := range down[1:] {
		candidates = candidates.Intersect(m.mustGet(d).up)
	}
	var found topology.EntityID
	candidates.Each(func(c topology.EntityID) bool {
		ent := m.entities[c]
		if ent.typ != t || len(ent.down) != len(down) {
			return false
		}
		if sameSet(ent.down, down) {
			found = c
			return true
		}
		return false
	})
	return found
}

func sameSet(a, b []topology.EntityID) bool {
	if len(a) != len(b) {
		return false
	}
	sa := append([]topology.EntityID(nil), a...)
	sb := append([]topology.EntityID(nil), b...)
	sort.Slice(sa, func(i, j int) bool { return sa[i] < sa[j] })
	sort.Slice(sb, func(i, j int) bool { return sb[i] < sb[j] })
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

// Classification implements topology.Mesh.
func (m *Mesh) Classification(e topology.EntityID) topology.GeomClass { return m.mustGet(e).class }

// GetFlag implements topology.Mesh.
func (m *Mesh) GetFlag(e topology.EntityID, flag topology.Flag) bool {
	return m.mustGet(e).flags&flag != 0
}

// SetFlag implements topology.Mesh.
func (m *Mesh) SetFlag(e topology.EntityID, flag topology.Flag) {
	ent := m.mustGet(e)
	ent.flags |= flag
}

// ClearFlag implements topology.Mesh.
func (m *Mesh) ClearFlag(e topology.EntityID, flag topology.Flag) {
	ent := m.mustGet(e)
	ent.flags &^= flag
}

// CreateIntTag implements topology.Mesh.
func (m *Mesh) CreateIntTag(name string) topology.IntTag {
	m.intTags[name] = make(map[topology.EntityID]int)
	return topology.NewIntTag(name)
}

// CreateDoubleTag implements topology.Mesh.
func (m *Mesh) CreateDoubleTag(name string) topology.DoubleTag {
	m.doubleTags[name] = make(map[topology.EntityID]float64)
	return topology.NewDoubleTag(name)
}

// DestroyTag implements topology.Mesh.
func (m *Mesh) DestroyTag(name string) {
	delete(m.intTags, name)
	delete(m.doubleTags, name)
}

// SetIntTag implements topology.Mesh.
func (m *Mesh) SetIntTag(e topology.EntityID, tag topology.IntTag, v int) {
	m.intTags[tag.Name()][e] = v
}

// GetIntTag implements topology.Mesh.
func (m *Mesh) GetIntTag(e topology.EntityID, tag topology.IntTag) (int, bool) {
	v, ok := m.intTags[tag.Name()][e]
	return v, ok
}

// SetDoubleTag implements topology.Mesh.
func (m *Mesh) SetDoubleTag(e topology.EntityID, tag topology.DoubleTag, v float64) {
	m.doubleTags[tag.Name()][e] = v
}

// GetDoubleTag implements topology.Mesh.
func (m *Mesh) GetDoubleTag(e topology.EntityID, tag topology.DoubleTag) (float64, bool) {
	v, ok := m.doubleTags[tag.Name()][e]
	return v, ok
}

// RemoveDoubleTag implements topology.Mesh.
func (m *Mesh) RemoveDoubleTag(e topology.EntityID, tag topology.DoubleTag) {
	delete(m.doubleTags[tag.Name()], e)
}

// Point implements topology.Mesh.
func (m *Mesh) Point(e topology.EntityID) topology.Point3 { return m.mustGet(e).point }

// EvaluateEdge implements topology.Mesh.
func (m *Mesh) EvaluateEdge(edge topology.EntityID, x float64) topology.Point3 {
	down := m.mustGet(edge).down
	p0, p1 := m.Point(down[0]), m.Point(down[1])
	return topology.Lerp(p0, p1, x)
}

// InterpolateParam implements topology.Mesh.
func (m *Mesh) InterpolateParam(edge topology.EntityID, x float64) topology.Param {
	down := m.mustGet(edge).down
	p0, p1 := m.mustGet(down[0]).param, m.mustGet(down[1]).param
	return topology.LerpParam(p0, p1, x)
}

// BuildVertex implements topology.Mesh.
func (m *Mesh) BuildVertex(class topology.GeomClass, point topology.Point3, param topology.Param) topology.EntityID {
	id := m.alloc()
	m.entities[id] = &entity{
		id:    id,
		typ:   topology.Vertex,
		up:    mapset.NewThreadUnsafeSet[topology.EntityID](),
		class: class,
		point: point,
		param: param,
	}
	m.byDim[topology.DimVertex] = append(m.byDim[topology.DimVertex], id)
	return id
}

// BuildElement implements topology.Mesh. The new entity inherits parent's
// geometric classification, per the "all buildSplitElement calls inherit
// e's geometric model" rule in §4.3.
func (m *Mesh) BuildElement(parent topology.EntityID, t topology.EntityType, down []topology.EntityID) topology.EntityID {
	id := m.alloc()
	ent := &entity{
		id:    id,
		typ:   t,
		down:  append([]topology.EntityID(nil), down...),
		up:    mapset.NewThreadUnsafeSet[topology.EntityID](),
		class: m.Classification(parent),
	}
	m.entities[id] = ent
	for _, d := range down {
		m.mustGet(d).up.Add(id)
	}
	m.byDim[t.Dim()] = append(m.byDim[t.Dim()], id)
	return id
}

// Destroy implements topology.Mesh.
func (m *Mesh) Destroy(e topology.EntityID) {
	ent := m.mustGet(e)
	for _, d := range ent.down {
		m.mustGet(d).up.Remove(e)
	}
	dim := ent.typ.Dim()
	slice := m.byDim[dim]
	for i, id := range slice {
		if id == e {
			m.byDim[dim] = append(slice[:i], slice[i+1:]...)
			break
		}
	}
	delete(m.entities, e)
	delete(m.remotes, e)
	for _, tags := range m.intTags {
		delete(tags, e)
	}
	for _, tags := range m.doubleTags {
		delete(tags, e)
	}
}

// IsShared implements topology.Mesh.
func (m *Mesh) IsShared(e topology.EntityID) bool { return len(m.remotes[e]) > 0 }

// Remotes implements topology.Mesh.
func (m *Mesh) Remotes(e topology.EntityID) map[topology.PeerID]topology.EntityID {
	out := make(map[topology.PeerID]topology.EntityID, len(m.remotes[e]))
	for k, v := range m.remotes[e] {
		out[k] = v
	}
	return out
}

// AddRemote implements topology.Mesh.
func (m *Mesh) AddRemote(e topology.EntityID, peer topology.PeerID, remote topology.EntityID) {
	if m.remotes[e] == nil {
		m.remotes[e] = make(map[topology.PeerID]topology.EntityID)
	}
	m.remotes[e][peer] = remote
}

// Stitch implements topology.Mesh. A single in-memory mesh already has
// fully consistent local adjacency; cross-peer reach is carried entirely
// by the remotes map, so there is nothing further to recompute here.
func (m *Mesh) Stitch() {}

// Self implements topology.Mesh.
func (m *Mesh) Self() topology.PeerID {
	if m.bus == nil {
		return 0
	}
	return m.bus.Self()
}

// PeerCount implements topology.Mesh.
func (m *Mesh) PeerCount() int {
	if m.bus == nil {
		return 1
	}
	return m.bus.PeerCount()
}

// Reduce implements topology.Mesh.
func (m *Mesh) Reduce(local int64) int64 {
	if m.bus == nil {
		return local
	}
	return m.bus.Reduce(local)
}
