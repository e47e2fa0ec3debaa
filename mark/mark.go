package mark

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"

	"github.com/katalvlaran/meshrefine/collective"
	"github.com/katalvlaran/meshrefine/sizefield"
	"github.com/katalvlaran/meshrefine/topology"
)

// flagMsg is the payload exchanged during the flag-consistency check: the
// sender's remote handle for the shared edge, as known on the recipient,
// and the sender's SPLIT verdict for it.
type flagMsg struct {
	Edge  topology.EntityID
	Split bool
}

// Mark implements the Edge Marker (§4.1). It visits every edge on this
// peer, sets FlagSplit/FlagDontSplit per sf.ShouldSplit, and returns the
// collective sum of marked edges across all peers via m.Reduce.
func Mark(m topology.Mesh, sf sizefield.SizeField) (int64, error) {
	var local int64
	for _, e := range m.Iterate(topology.DimEdge) {
		if sf.ShouldSplit(m, e) {
			m.SetFlag(e, topology.FlagSplit)
			local++
		} else {
			m.SetFlag(e, topology.FlagDontSplit)
		}
	}

	return m.Reduce(local), nil
}

// CheckFlagConsistency implements the flag-consistency check (§4.6 step 2):
// for every shared edge, asserts every peer's copy agrees on FlagSplit. It
// is a no-op when bus is nil (single-peer mode, nothing to check).
func CheckFlagConsistency(bus collective.Bus, m topology.Mesh) error {
	if bus == nil {
		return nil
	}

	outgoing := make(map[topology.PeerID][]collective.Message)
	for _, e := range m.Iterate(topology.DimEdge) {
		if !m.IsShared(e) {
			continue
		}
		split := m.GetFlag(e, topology.FlagSplit)
		for peer, remoteHandle := range m.Remotes(e) {
			outgoing[peer] = append(outgoing[peer], collective.Message{
				ID:      uuid.New(),
				From:    m.Self(),
				Payload: flagMsg{Edge: remoteHandle, Split: split},
			})
		}
	}

	inbox, err := bus.Exchange(outgoing)
	if err != nil {
		return err
	}

	seen := mapset.NewThreadUnsafeSet[uuid.UUID]()
	for _, msg := range inbox {
		if seen.Contains(msg.ID) {
			continue
		}
		seen.Add(msg.ID)

		fm, ok := msg.Payload.(flagMsg)
		if !ok {
			continue
		}
		if m.GetFlag(fm.Edge, topology.FlagSplit) != fm.Split {
			return fmt.Errorf("%w: edge %s disagrees with peer %d", ErrFlagInconsistent, fm.Edge, msg.From)
		}
	}

	return nil
}
