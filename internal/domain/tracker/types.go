package tracker

import "errors"

var (
	ErrEmptySearchTerm    = errors.New("search term cannot be empty")
	ErrEmptyNotifyAddress = errors.New("notify address cannot be empty")
	ErrNegativePrice      = errors.New("price bounds cannot be negative")
	ErrInvalidCondition   = errors.New("condition must be all, new or used")
	ErrLocationTooLong    = errors.New("location code exceeds maximum length")

	ErrAlreadyActive = errors.New("tracker is already active")
	ErrNotPending    = errors.New("tracker is not pending")
	ErrCodeMismatch  = errors.New("confirmation code does not match")
)
