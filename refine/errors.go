package refine

import "errors"

// ErrNoSizeField indicates a Refiner was built without a size-field
// oracle, which every sweep requires to mark edges.
var ErrNoSizeField = errors.New("refine: no size-field oracle configured")
