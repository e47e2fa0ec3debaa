package template

import "errors"

// ErrIllegalMask indicates an element's edge-split bitmask has no
// template entry (code_index == -1). Per §7 this is a programming
// invariant violation: propagation is supposed to close under
// edge-incidence, so every element reaching the template engine should
// carry a legal combination. Fatal.
var ErrIllegalMask = errors.New("template: illegal edge-split combination")
