package sizefield

import "github.com/katalvlaran/meshrefine/topology"

// SizeField is the external collaborator consulted by the Edge Marker and
// by split-vertex construction. The core never decides whether or where to
// split; it only calls through this interface.
type SizeField interface {
	// ShouldSplit reports whether edge qualifies for bisection.
	ShouldSplit(m topology.Mesh, edge topology.EntityID) bool

	// PlaceSplit returns the parameter ξ ∈ [0,1] at which edge should be
	// bisected. A result outside [0,1] is a contract violation.
	PlaceSplit(m topology.Mesh, edge topology.EntityID) (float64, error)

	// Interpolate stamps derived field data onto newVertex given the local
	// parameter x ∈ [-1,1] it was placed at along edge.
	Interpolate(m topology.Mesh, edge topology.EntityID, x float64, newVertex topology.EntityID) error

	// TransferDimension returns the minimum entity dimension this oracle
	// wants new-entity collection for. The orchestrator's §4.6 step 5
	// merges only the solution-transfer and shape-handler dimensions; it
	// does not read this value.
	TransferDimension() int
}

// Uniform is a SizeField test double: it marks every edge longer than
// MinLength and always places the split vertex at the geometric midpoint.
// It performs no interpolation beyond the midpoint placement itself.
type Uniform struct {
	MinLength float64
}

// NewUniform returns a Uniform oracle with the given length threshold.
func NewUniform(minLength float64) *Uniform {
	return &Uniform{MinLength: minLength}
}

// ShouldSplit implements SizeField.
func (u *Uniform) ShouldSplit(m topology.Mesh, edge topology.EntityID) bool {
	down := m.Down(edge)
	p0, p1 := m.Point(down[0]), m.Point(down[1])
	dx, dy, dz := p1.X-p0.X, p1.Y-p0.Y, p1.Z-p0.Z
	length2 := dx*dx + dy*dy + dz*dz
	return length2 > u.MinLength*u.MinLength
}

// PlaceSplit implements SizeField, always returning the midpoint.
func (u *Uniform) PlaceSplit(m topology.Mesh, edge topology.EntityID) (float64, error) {
	return 0.5, nil
}

// Interpolate implements SizeField as a no-op: Uniform carries no field
// data of its own.
func (u *Uniform) Interpolate(m topology.Mesh, edge topology.EntityID, x float64, newVertex topology.EntityID) error {
	return nil
}

// TransferDimension implements SizeField, returning dimension 0 (vertices
// and every dimension above).
func (u *Uniform) TransferDimension() int { return 0 }
