package submission

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/dublaj/internal/authform"
	"github.com/thenoetrevino/dublaj/internal/database"
	"github.com/thenoetrevino/dublaj/internal/models"
)

// Service journals submit attempts. It satisfies authform.Submitter and
// authform.RejectionRecorder so a Controller can use it directly.
type Service interface {
	authform.Submitter
	authform.RejectionRecorder

	History(ctx context.Context, limit int) ([]*models.Submission, error)
	Stats(ctx context.Context) (map[models.Outcome]int, error)
}

// service implements Service interface
type service struct {
	repo       database.SubmissionRepository
	maxEntries int
	now        func() time.Time
}

// NewService creates a journal service. maxEntries > 0 prunes older entries after each write.
func NewService(repo database.SubmissionRepository, maxEntries int) Service {
	return &service{
		repo:       repo,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Submit records an accepted payload. The password is not stored.
func (s *service) Submit(ctx context.Context, payload authform.Payload) error {
	if payload.Email == "" {
		return ErrEmptyEmail
	}

	entry := &models.Submission{
		Mode:       payload.Mode.String(),
		Outcome:    models.OutcomeAccepted,
		Email:      payload.Email,
		Name:       payload.NameOrEmpty(),
		RememberMe: payload.Remembered(),
		CreatedAt:  s.now(),
	}
	return s.record(ctx, entry)
}

// RecordRejected records a submit that failed validation, keeping only the
// names of the failing fields.
func (s *service) RecordRejected(ctx context.Context, mode authform.Mode, fields authform.Fields, errs authform.ErrorMap) error {
	names := make([]string, 0, len(errs))
	for _, f := range errs.Fields() {
		names = append(names, f.String())
	}

	entry := &models.Submission{
		Mode:        mode.String(),
		Outcome:     models.OutcomeRejected,
		Email:       fields.Email,
		ErrorFields: names,
		CreatedAt:   s.now(),
	}
	if authform.Relevant(mode, authform.Name) {
		entry.Name = fields.Name
	}
	if authform.Relevant(mode, authform.RememberMe) {
		entry.RememberMe = fields.RememberMe
	}
	return s.record(ctx, entry)
}

func (s *service) record(ctx context.Context, entry *models.Submission) error {
	if err := s.repo.CreateSubmission(ctx, entry); err != nil {
		return fmt.Errorf("journal %s submission: %w", entry.Outcome, err)
	}
	slog.Debug("submission journaled", "id", entry.ID, "outcome", entry.Outcome, "mode", entry.Mode)

	if s.maxEntries > 0 {
		deleted, err := s.repo.PruneSubmissions(ctx, s.maxEntries)
		if err != nil {
			slog.Error("Error pruning journal", "error", err)
		} else if deleted > 0 {
			slog.Debug("journal pruned", "deleted", deleted)
		}
	}
	return nil
}

// History returns up to limit entries, newest first. 0 means all.
func (s *service) History(ctx context.Context, limit int) ([]*models.Submission, error) {
	if limit < 0 {
		return nil, ErrInvalidLimit
	}
	return s.repo.ListSubmissions(ctx, limit)
}

// Stats returns the number of entries per outcome.
func (s *service) Stats(ctx context.Context) (map[models.Outcome]int, error) {
	return s.repo.CountSubmissionsByOutcome(ctx)
}
