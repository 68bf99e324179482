package errs

import "errors"

// Sentinel errors surfaced by the tracker usecase layer. The HTTP handler
// maps these onto status codes; marketplace and snapshot failures are
// contained at their own layer and never appear here.
var (
	// Tracker lifecycle errors
	ErrTrackerNotFound         = errors.New("tracker not found")
	ErrTrackerAlreadyActive    = errors.New("tracker already active")
	ErrTrackerNotPending       = errors.New("tracker not pending")
	ErrInvalidConfirmationCode = errors.New("invalid confirmation code")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
