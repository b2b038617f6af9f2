package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the journal schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS submissions (
			id TEXT PRIMARY KEY,
			mode TEXT NOT NULL CHECK (mode IN ('login', 'register')),
			outcome TEXT NOT NULL CHECK (outcome IN ('accepted', 'rejected')),
			email TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL DEFAULT '',
			remember_me INTEGER NOT NULL DEFAULT 0,
			error_fields TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL -- unix milliseconds
		)
	`)
	if err != nil {
		return err
	}

	// Listing is always newest first
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_submissions_created
		ON submissions(created_at DESC)
	`)
	return err
}
