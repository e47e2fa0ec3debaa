package remote

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"

	"github.com/katalvlaran/meshrefine/collective"
	"github.com/katalvlaran/meshrefine/refstate"
	"github.com/katalvlaran/meshrefine/splitvert"
	"github.com/katalvlaran/meshrefine/topology"
)

// linkMsg is the payload exchanged during linking: the sender's handle for
// its own local split vertex, addressed so the recipient can interpret
// Parent as its own local handle for the shared entity.
type linkMsg struct {
	Parent topology.EntityID
	Vertex topology.EntityID
}

// LinkNewVerts implements §4.5: it runs only when bus is non-nil (peer
// count > 1). It walks every shared parent entity of dimension 1..D-1 in
// s.ToSplit, skipping any with no local split vertex — in practice this
// means only edges participate, since faces never produce one of their
// own (I3 ties new vertices to marked edges only); a shared face in a
// 3D mesh has no findable split vertex and is silently skipped.
func LinkNewVerts(bus collective.Bus, m topology.Mesh, s *refstate.State, topDim int) error {
	if bus == nil {
		return nil
	}

	outgoing := make(map[topology.PeerID][]collective.Message)
	for d := 1; d < topDim; d++ {
		for _, e := range s.ToSplit[d] {
			if !m.IsShared(e) {
				continue
			}
			sv := splitvert.FindByParent(m, s, e)
			if sv == topology.Nil {
				continue
			}
			for peer, remoteHandle := range m.Remotes(e) {
				outgoing[peer] = append(outgoing[peer], collective.Message{
					ID:      uuid.New(),
					From:    m.Self(),
					Payload: linkMsg{Parent: remoteHandle, Vertex: sv},
				})
			}
		}
	}

	inbox, err := bus.Exchange(outgoing)
	if err != nil {
		return err
	}

	// linkedFrom tracks, per local split vertex, which peers have already
	// registered a remote copy of it this round. A Bus over an unreliable
	// transport may redeliver a message; seen guards against processing
	// the same correlation ID twice, and linkedFrom guards against the
	// same peer's link landing on a vertex it already linked.
	seen := mapset.NewThreadUnsafeSet[uuid.UUID]()
	linkedFrom := make(map[topology.EntityID]mapset.Set[topology.PeerID])

	for _, msg := range inbox {
		if seen.Contains(msg.ID) {
			continue
		}
		seen.Add(msg.ID)

		lm, ok := msg.Payload.(linkMsg)
		if !ok {
			continue
		}
		localSV := splitvert.FindByParent(m, s, lm.Parent)
		if localSV == topology.Nil {
			continue
		}

		peers, ok := linkedFrom[localSV]
		if !ok {
			peers = mapset.NewThreadUnsafeSet[topology.PeerID]()
			linkedFrom[localSV] = peers
		}
		if peers.Contains(msg.From) {
			continue
		}
		peers.Add(msg.From)

		m.AddRemote(localSV, msg.From, lm.Vertex)
	}

	return nil
}
