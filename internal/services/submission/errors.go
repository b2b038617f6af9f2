package submission

import "errors"

// Submission-related errors
var (
	// ErrEmptyEmail is returned when an accepted payload carries no email
	ErrEmptyEmail = errors.New("submission email cannot be empty")

	// ErrInvalidLimit is returned for a negative history limit
	ErrInvalidLimit = errors.New("invalid limit: must be >= 0")
)
