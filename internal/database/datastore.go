package database

// DataStore defines the unified interface for all data operations.
// Consumers that only read or only write can depend on the smaller
// SubmissionReader / SubmissionWriter interfaces instead.
type DataStore interface {
	SubmissionRepository
}
