package collective

import (
	"errors"

	"github.com/google/uuid"
	"github.com/katalvlaran/meshrefine/topology"
)

// Sentinel errors for collective operations.
var (
	// ErrPeerCountMismatch names a RunSweep call with a different number of
	// Bus instances than the hub was built for. RunSweep does not check
	// the count and never returns this error.
	ErrPeerCountMismatch = errors.New("collective: peer count mismatch")

	// ErrAlreadyExchanged names a second Exchange call by the same peer
	// within one round. The in-process bus does not detect this and never
	// returns this error.
	ErrAlreadyExchanged = errors.New("collective: peer already exchanged this round")
)

// Message is one collective message: a correlation ID (for logging and
// dedup), the sending peer, and an opaque payload interpreted by the
// caller (mark uses it for flag bits, remote uses it for parent/vertex
// handle pairs).
type Message struct {
	ID      uuid.UUID
	From    topology.PeerID
	Payload any
}

// Bus is the collective operations a single peer performs during a sweep.
// Every method is blocking and must be called by every peer, in the same
// order, for the collective to complete (§5).
type Bus interface {
	// Self returns this peer's ID.
	Self() topology.PeerID

	// PeerCount returns the number of participating peers.
	PeerCount() int

	// Reduce sums local across all peers and returns the total to every
	// peer (used for the marked-edge count in §4.1).
	Reduce(local int64) int64

	// Exchange performs one collective send/receive round: outgoing maps
	// destination peer to the messages this peer addresses to it; the
	// call blocks until every peer has submitted its outgoing batch, then
	// returns the messages addressed to Self().
	Exchange(outgoing map[topology.PeerID][]Message) ([]Message, error)
}
