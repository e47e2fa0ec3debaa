package collective

import (
	"sync"

	"github.com/katalvlaran/meshrefine/topology"
)

// hub is the shared barrier state behind a set of in-process peer buses.
// Each collective call blocks the calling goroutine until every peer has
// arrived, then every peer observes the same result — the same shape as a
// blocking MPI_Allreduce / collective send-receive round.
type hub struct {
	n int

	mu sync.Mutex

	reduceCount  int
	reduceSum    int64
	reduceResult int64
	reduceDone   chan struct{}

	exCount    int
	exOutgoing map[topology.PeerID][]Message
	exResult   map[topology.PeerID][]Message
	exDone     chan struct{}
}

func newHub(n int) *hub {
	return &hub{
		n:          n,
		reduceDone: make(chan struct{}),
		exOutgoing: make(map[topology.PeerID][]Message),
		exDone:     make(chan struct{}),
	}
}

func (h *hub) reduce(local int64) int64 {
	h.mu.Lock()
	h.reduceSum += local
	h.reduceCount++
	if h.reduceCount < h.n {
		done := h.reduceDone
		h.mu.Unlock()
		<-done
		h.mu.Lock()
		res := h.reduceResult
		h.mu.Unlock()
		return res
	}

	h.reduceResult = h.reduceSum
	h.reduceSum = 0
	h.reduceCount = 0
	done := h.reduceDone
	h.reduceDone = make(chan struct{})
	h.mu.Unlock()
	close(done)

	return h.reduceResult
}

func (h *hub) exchange(self topology.PeerID, outgoing map[topology.PeerID][]Message) []Message {
	h.mu.Lock()
	for to, msgs := range outgoing {
		h.exOutgoing[to] = append(h.exOutgoing[to], msgs...)
	}
	h.exCount++
	if h.exCount < h.n {
		done := h.exDone
		h.mu.Unlock()
		<-done
		h.mu.Lock()
		inbox := h.exResult[self]
		h.mu.Unlock()
		return inbox
	}

	h.exResult = h.exOutgoing
	h.exOutgoing = make(map[topology.PeerID][]Message)
	h.exCount = 0
	done := h.exDone
	h.exDone = make(chan struct{})
	h.mu.Unlock()
	close(done)

	return h.exResult[self]
}

// peerBus is one peer's view of a hub.
type peerBus struct {
	hub  *hub
	self topology.PeerID
}

// Self implements Bus.
func (p *peerBus) Self() topology.PeerID { return p.self }

// PeerCount implements Bus.
func (p *peerBus) PeerCount() int { return p.hub.n }

// Reduce implements Bus.
func (p *peerBus) Reduce(local int64) int64 { return p.hub.reduce(local) }

// Exchange implements Bus.
func (p *peerBus) Exchange(outgoing map[topology.PeerID][]Message) ([]Message, error) {
	return p.hub.exchange(p.self, outgoing), nil
}

// NewInProcessBuses returns n Bus instances bound to one shared hub,
// simulating an n-peer SPMD run inside a single process. Every collective
// call must be invoked by all n peers (typically from n goroutines, see
// RunSweep) before any of them returns.
func NewInProcessBuses(n int) []Bus {
	h := newHub(n)
	out := make([]Bus, n)
	for i := 0; i < n; i++ {
		out[i] = &peerBus{hub: h, self: topology.PeerID(i)}
	}
	return out
}
