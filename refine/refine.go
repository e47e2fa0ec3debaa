package refine

import (
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/meshrefine/mark"
	"github.com/katalvlaran/meshrefine/propagate"
	"github.com/katalvlaran/meshrefine/refstate"
	"github.com/katalvlaran/meshrefine/remote"
	"github.com/katalvlaran/meshrefine/splitvert"
	"github.com/katalvlaran/meshrefine/template"
	"github.com/katalvlaran/meshrefine/topology"
	"github.com/katalvlaran/meshrefine/transfer"
)

// Refiner drives one refinement sweep per §4.6. It borrows the mesh and
// the oracles in Config; it owns only its Metrics and logger.
type Refiner struct {
	cfg     Config
	logger  Logger
	metrics *Metrics
}

// New builds a Refiner. cfg.SizeField must be set; cfg.Solution and
// cfg.Shape default to transfer.NoOp{} when nil.
func New(cfg Config, opts ...Option) *Refiner {
	if cfg.Solution == nil {
		cfg.Solution = transfer.NoOp{}
	}
	if cfg.Shape == nil {
		cfg.Shape = transfer.NoOp{}
	}

	r := &Refiner{
		cfg:     cfg,
		logger:  cfg.Logger,
		metrics: NewMetrics(cfg.Registerer),
	}
	if r.logger == nil {
		r.logger = NewSlogLogger(nil)
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Refine drives the fixed pipeline of §4.6 for one sweep. It returns
// false, nil on an empty sweep (no edges marked); any other failure is
// fatal per §7 and is returned as an error.
func (r *Refiner) Refine(m topology.Mesh) (bool, error) {
	if r.cfg.SizeField == nil {
		return false, ErrNoSizeField
	}

	start := time.Now()
	sweepID := uuid.New()
	s := refstate.New(m)
	defer s.Close(m)

	// 1. Mark edges; if count=0, return false.
	count, err := mark.Mark(m, r.cfg.SizeField)
	if err != nil {
		r.observeSweep(start, "error")
		r.logger.Error("refine: sweep failed", "sweepID", sweepID, "err", err)
		return false, err
	}
	if count == 0 {
		r.observeSweep(start, "empty")
		r.logger.Info("refine: empty sweep, no edges marked", "sweepID", sweepID)
		return false, nil
	}
	r.metrics.markedEdges.Add(float64(count))

	// 2. Assert flag consistency across peers.
	if err := mark.CheckFlagConsistency(r.cfg.Bus, m); err != nil {
		r.observeSweep(start, "error")
		r.logger.Error("refine: sweep failed", "sweepID", sweepID, "err", err)
		return false, err
	}

	// 3. Propagate & index.
	propagate.Propagate(m, s)

	// 4-5. Reset and merge collection requirements.
	s.ResetCollection()
	s.CollectForTransfer(r.cfg.Solution.TransferDimension(), r.cfg.Shape.TransferDimension())
	s.CollectForMatching(r.cfg.ShouldHandleMatching, m.Dimension())

	// 6. splitElements.
	if err := r.splitElements(m, s); err != nil {
		r.observeSweep(start, "error")
		r.logger.Error("refine: sweep failed", "sweepID", sweepID, "err", err)
		return false, err
	}

	// 7. processNewElements: link, stitch, match, transfer.
	if err := remote.LinkNewVerts(r.cfg.Bus, m, s, m.Dimension()); err != nil {
		r.observeSweep(start, "error")
		r.logger.Error("refine: sweep failed", "sweepID", sweepID, "err", err)
		return false, err
	}
	m.Stitch()
	if r.cfg.ShouldHandleMatching && r.cfg.MatchNewElements != nil {
		if err := r.cfg.MatchNewElements(m, s); err != nil {
			r.observeSweep(start, "error")
			r.logger.Error("refine: sweep failed", "sweepID", sweepID, "err", err)
			return false, err
		}
	}
	if err := r.transferElements(m, s); err != nil {
		r.observeSweep(start, "error")
		r.logger.Error("refine: sweep failed", "sweepID", sweepID, "err", err)
		return false, err
	}

	// 8. Flag new layer entities (external hook).
	if r.cfg.FlagNewLayerEntities != nil {
		if err := r.cfg.FlagNewLayerEntities(m, s); err != nil {
			r.observeSweep(start, "error")
			r.logger.Error("refine: sweep failed", "sweepID", sweepID, "err", err)
			return false, err
		}
	}

	// 9. Destroy old top-dimensional elements; shrink toSplit.
	topDim := m.Dimension()
	for _, e := range s.ToSplit[topDim] {
		m.Destroy(e)
	}
	for d := 1; d <= topDim; d++ {
		s.ToSplit[d] = nil
	}

	// 10. Clean vertPlaceTag from new split vertices.
	s.CleanSplitVerts(m)

	// 11. Snap (external hook).
	if r.cfg.Snap != nil {
		if err := r.cfg.Snap(m); err != nil {
			r.observeSweep(start, "error")
			r.logger.Error("refine: sweep failed", "sweepID", sweepID, "err", err)
			return false, err
		}
	}

	// 12. Clear newEntities.
	s.ForgetNewEntities()

	// 13. Report elapsed time and count.
	elapsed := r.observeSweep(start, "ok")
	r.logger.Info("refine: sweep complete", "sweepID", sweepID, "markedEdges", count, "elapsed", elapsed)

	return true, nil
}

func (r *Refiner) observeSweep(start time.Time, outcome string) time.Duration {
	elapsed := time.Since(start)
	r.metrics.sweepDuration.With(prometheus.Labels{"outcome": outcome}).Observe(elapsed.Seconds())
	return elapsed
}

// splitElements implements §4.6 step 6. Dimension 1 (edges) always
// constructs a new split vertex before bisecting, since every other
// dimension's template reads split vertices back out via sv. Dimensions
// 2..D dispatch through the template engine's code_match tables.
func (r *Refiner) splitElements(m topology.Mesh, s *refstate.State) error {
	for _, e := range s.ToSplit[topology.DimEdge] {
		down := m.Down(e)
		v, err := splitvert.Make(m, e, r.cfg.SizeField, r.cfg.Solution, r.cfg.Shape, s, r.cfg.ShouldTransferParametric)
		if err != nil {
			return err
		}
		r.metrics.splitVertices.Inc()

		sv := func(a, b topology.EntityID) topology.EntityID { return v }
		children := template.SplitEdge(m, e, down[0], down[1], sv)

		entities := make([]topology.EntityID, 0, len(children)+1)
		entities = append(entities, children...)
		entities = append(entities, v)
		s.NewEntities[topology.DimEdge] = append(s.NewEntities[topology.DimEdge], entities)
	}

	svLookup := func(a, b topology.EntityID) topology.EntityID {
		return splitvert.FindByEndpoints(m, s, a, b)
	}

	for d := topology.DimFace; d <= topology.Dim(m.Dimension()); d++ {
		for _, parent := range s.ToSplit[d] {
			children, err := template.Dispatch(m, parent, svLookup)
			if err != nil {
				return err
			}
			if s.ShouldCollect[d] {
				s.NewEntities[d] = append(s.NewEntities[d], children)
			}
		}
	}

	return nil
}

// transferElements implements §4.6 step 7d: it walks every dimension at or
// above the lower of the two collaborators' transfer dimensions and, for
// each split parent there, calls each collaborator's OnRefine with the
// collected children only at dimensions at or above that collaborator's
// own TransferDimension.
func (r *Refiner) transferElements(m topology.Mesh, s *refstate.State) error {
	minDim := r.cfg.Solution.TransferDimension()
	if sd := r.cfg.Shape.TransferDimension(); sd < minDim {
		minDim = sd
	}

	for d := minDim; d <= m.Dimension(); d++ {
		if d < 0 || d > 3 || !s.ShouldCollect[d] {
			continue
		}
		for i, parent := range s.ToSplit[d] {
			children := s.NewEntities[d][i]
			if d >= r.cfg.Solution.TransferDimension() {
				if err := r.cfg.Solution.OnRefine(m, parent, children); err != nil {
					return err
				}
			}
			if d >= r.cfg.Shape.TransferDimension() {
				if err := r.cfg.Shape.OnRefine(m, parent, children); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
