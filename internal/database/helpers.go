package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
)

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			log.Printf("failed to rollback transaction: %v", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// joinFields packs field names into the error_fields column
func joinFields(fields []string) string {
	return strings.Join(fields, ",")
}

// splitFields is the inverse of joinFields; an empty column yields nil
func splitFields(column string) []string {
	if column == "" {
		return nil
	}
	return strings.Split(column, ",")
}
