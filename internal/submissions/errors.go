package submissions

import "errors"

var (
	// ErrNotFound indicates the submission does not exist.
	ErrNotFound = errors.New("submission not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStoreUnavailable indicates the document store did not initialize.
	ErrStoreUnavailable = errors.New("submission store unavailable")
)
