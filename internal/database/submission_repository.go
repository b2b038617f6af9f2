package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/dublaj/internal/models"
)

// SubmissionRepo handles all journal database operations.
type SubmissionRepo struct {
	db *sql.DB
}

// CreateSubmission inserts s. ID and CreatedAt are filled in when zero.
func (r *SubmissionRepo) CreateSubmission(ctx context.Context, s *models.Submission) error {
	if !s.Outcome.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidOutcome, s.Outcome)
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO submissions (id, mode, outcome, email, name, remember_me, error_fields, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Mode, string(s.Outcome), s.Email, s.Name, s.RememberMe,
		joinFields(s.ErrorFields), s.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert submission %s: %w", s.ID, err)
	}
	return nil
}

// ListSubmissions returns up to limit entries, newest first. limit <= 0 means no limit.
func (r *SubmissionRepo) ListSubmissions(ctx context.Context, limit int) ([]*models.Submission, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, mode, outcome, email, name, remember_me, error_fields, created_at
		 FROM submissions
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	submissions := []*models.Submission{}
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating submissions: %w", err)
	}
	return submissions, nil
}

// GetSubmissionByID returns one entry or models.ErrSubmissionNotFound.
func (r *SubmissionRepo) GetSubmissionByID(ctx context.Context, id string) (*models.Submission, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, mode, outcome, email, name, remember_me, error_fields, created_at
		 FROM submissions WHERE id = ?`,
		id,
	)
	s, err := scanSubmission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", models.ErrSubmissionNotFound, id)
	}
	return s, err
}

// CountSubmissionsByOutcome returns the number of entries per outcome.
func (r *SubmissionRepo) CountSubmissionsByOutcome(ctx context.Context) (map[models.Outcome]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT outcome, COUNT(*) FROM submissions GROUP BY outcome`)
	if err != nil {
		return nil, fmt.Errorf("failed to count submissions: %w", err)
	}
	defer rows.Close()

	counts := map[models.Outcome]int{
		models.OutcomeAccepted: 0,
		models.OutcomeRejected: 0,
	}
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("failed to scan outcome count: %w", err)
		}
		counts[models.Outcome(outcome)] = n
	}
	return counts, rows.Err()
}

// PruneSubmissions keeps the newest keep entries and deletes the rest.
// It returns the number of deleted rows. keep <= 0 disables pruning.
func (r *SubmissionRepo) PruneSubmissions(ctx context.Context, keep int) (int, error) {
	if keep <= 0 {
		return 0, nil
	}

	var deleted int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`DELETE FROM submissions WHERE id NOT IN (
				SELECT id FROM submissions ORDER BY created_at DESC, rowid DESC LIMIT ?
			)`,
			keep,
		)
		if err != nil {
			return fmt.Errorf("failed to prune submissions: %w", err)
		}
		deleted, err = result.RowsAffected()
		return err
	})
	return int(deleted), err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (*models.Submission, error) {
	var (
		s           models.Submission
		outcome     string
		errorFields string
		createdAt   int64
	)
	err := row.Scan(&s.ID, &s.Mode, &outcome, &s.Email, &s.Name, &s.RememberMe, &errorFields, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan submission: %w", err)
	}
	s.Outcome = models.Outcome(outcome)
	s.ErrorFields = splitFields(errorFields)
	s.CreatedAt = time.UnixMilli(createdAt)
	return &s, nil
}
