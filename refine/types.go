package refine

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/meshrefine/collective"
	"github.com/katalvlaran/meshrefine/refstate"
	"github.com/katalvlaran/meshrefine/sizefield"
	"github.com/katalvlaran/meshrefine/topology"
	"github.com/katalvlaran/meshrefine/transfer"
)

// Logger defines a standard interface for structured, leveled logging,
// satisfied by *slog.Logger directly.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type slogLogger struct{ l *slog.Logger }

// NewSlogLogger adapts a *slog.Logger to Logger. A nil l uses slog.Default.
func NewSlogLogger(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	return &slogLogger{l: l}
}

func (s *slogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *slogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *slogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *slogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

// LayerHook and SnapHook are the §4.6 steps 8 and 11 external hooks
// (flagging new layer entities, snapping boundary vertices onto
// geometry). Both are explicitly out of scope (§1 Non-goals / external
// collaborators); a Config that leaves them nil simply skips the step.
type LayerHook func(m topology.Mesh, s *refstate.State) error
type SnapHook func(m topology.Mesh) error

// MatchHook propagates periodic matches onto new children (§4.6 step 7c),
// another external collaborator.
type MatchHook func(m topology.Mesh, s *refstate.State) error

// Config is a sweep's inputs (§6): the size-field oracle, the
// solution-transfer and shape-handler collaborators, the collective bus
// (nil for single-peer), and the recognized options.
type Config struct {
	SizeField sizefield.SizeField
	Solution  transfer.Transfer
	Shape     transfer.Transfer
	Bus       collective.Bus

	ShouldTransferParametric bool
	ShouldHandleMatching     bool

	MatchNewElements     MatchHook
	FlagNewLayerEntities LayerHook
	Snap                 SnapHook

	Logger     Logger
	Registerer prometheus.Registerer
}

// Option configures a Refiner at construction time.
type Option func(*Refiner)

// WithLogger overrides the default slog-backed Logger.
func WithLogger(l Logger) Option {
	return func(r *Refiner) { r.logger = l }
}
