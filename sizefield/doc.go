// Package sizefield defines the size-field oracle contract (§6 of the
// design): the external collaborator that decides whether an edge should
// be split and where along its parameter, and interpolates values onto the
// resulting vertex. The refinement core only ever calls through the
// SizeField interface; it never knows how placement or interpolation is
// actually computed.
//
// A Uniform implementation is provided for tests and examples: it marks
// every edge longer than a threshold and always places the split vertex at
// the midpoint.
package sizefield
