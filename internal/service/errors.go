package service

import "errors"

// Error taxonomy for user-facing failures. Handlers map these to HTTP
// status codes; everything else is an internal error.
var (
	// ErrValidation marks a malformed or incomplete request. No state is
	// mutated.
	ErrValidation = errors.New("validation failed")

	// ErrPrecondition marks an action attempted without its prerequisite
	// data (occupied seat, empty source selection, missing email). The
	// action is aborted with no state change.
	ErrPrecondition = errors.New("precondition failed")

	// ErrNotFound marks a missing group or passenger.
	ErrNotFound = errors.New("not found")
)
