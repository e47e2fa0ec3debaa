package refine

import "github.com/prometheus/client_golang/prometheus"

// Metrics wraps the Prometheus collectors a Refiner publishes. Registerer
// may be nil, in which case the collectors are created but never
// registered — useful for tests that don't stand up a registry.
type Metrics struct {
	sweepDuration *prometheus.HistogramVec
	markedEdges   prometheus.Counter
	splitVertices prometheus.Counter
}

// NewMetrics builds a Metrics instance and registers it on reg if non-nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		sweepDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "meshrefine_sweep_duration_seconds",
			Help:    "Wall-clock duration of one refinement sweep.",
			Buckets: prometheus.DefBuckets,
		}, []string{"outcome"}),
		markedEdges: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "meshrefine_marked_edges_total",
			Help: "Total edges marked for bisection across all sweeps on this peer.",
		}),
		splitVertices: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "meshrefine_split_vertices_total",
			Help: "Total split vertices created across all sweeps on this peer.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.sweepDuration, m.markedEdges, m.splitVertices)
	}

	return m
}
