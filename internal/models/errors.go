package models

import "errors"

// Domain-specific errors for the submission journal
var (
	// ErrSubmissionNotFound indicates that no journal entry has the requested ID
	ErrSubmissionNotFound = errors.New("submission not found")

	// ErrInvalidOutcome indicates an outcome other than accepted or rejected
	ErrInvalidOutcome = errors.New("invalid submission outcome")
)

// Valid reports whether o is a known outcome
func (o Outcome) Valid() bool {
	return o == OutcomeAccepted || o == OutcomeRejected
}
