package mark

import "errors"

// ErrFlagInconsistent indicates a shared edge was marked SPLIT on one peer
// but not on another (§7: fatal, a programming/oracle invariant violation —
// the size-field oracle must agree with itself across peers for any edge
// they both own).
var ErrFlagInconsistent = errors.New("mark: shared edge flag inconsistent across peers")
