package sizefield

import "errors"

// Sentinel errors for size-field oracle contract violations. Per §7 these
// are all fatal: an oracle that breaks its contract aborts the sweep.
var (
	// ErrInvalidPlacement indicates PlaceSplit returned ξ outside [0,1].
	ErrInvalidPlacement = errors.New("sizefield: placement out of range")
)
