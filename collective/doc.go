// Package collective provides the SPMD, blocking message-passing primitive
// the rest of the module treats as its "peer" substrate (§5): a fixed set
// of peers, one collective reduction, and one collective send/receive
// round. Real deployments bind Bus to whatever message bus the mesh
// substrate already uses (MPI, gRPC streams, …); the buses returned by
// NewInProcessBuses simulate a full N-peer run inside a single test process.
package collective
