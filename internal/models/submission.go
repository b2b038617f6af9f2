package models

import "time"

// Outcome records whether a submit attempt passed validation
type Outcome string

const (
	OutcomeAccepted Outcome = "accepted"
	OutcomeRejected Outcome = "rejected"
)

// Submission is one journaled submit attempt.
// Passwords are never part of it.
type Submission struct {
	ID          string    `json:"id"`
	Mode        string    `json:"mode"`
	Outcome     Outcome   `json:"outcome"`
	Email       string    `json:"email,omitempty"`
	Name        string    `json:"name,omitempty"`
	RememberMe  bool      `json:"rememberMe"`
	ErrorFields []string  `json:"errorFields,omitempty"` // wire names of fields that failed validation
	CreatedAt   time.Time `json:"createdAt"`
}

// GetID returns the journal entry ID
func (s *Submission) GetID() string {
	return s.ID
}

// Accepted reports whether the attempt produced a payload
func (s *Submission) Accepted() bool {
	return s.Outcome == OutcomeAccepted
}
