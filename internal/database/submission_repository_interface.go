package database

import (
	"context"

	"github.com/thenoetrevino/dublaj/internal/models"
)

// SubmissionReader defines read operations for the journal.
type SubmissionReader interface {
	ListSubmissions(ctx context.Context, limit int) ([]*models.Submission, error)
	GetSubmissionByID(ctx context.Context, id string) (*models.Submission, error)
	CountSubmissionsByOutcome(ctx context.Context) (map[models.Outcome]int, error)
}

// SubmissionWriter defines write operations for the journal.
type SubmissionWriter interface {
	CreateSubmission(ctx context.Context, s *models.Submission) error
	PruneSubmissions(ctx context.Context, keep int) (int, error)
}

// SubmissionRepository combines all journal operations.
type SubmissionRepository interface {
	SubmissionReader
	SubmissionWriter
}
