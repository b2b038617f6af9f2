package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/dublaj/internal/models"
)

// TestInitDB_PersistsAcrossReopen writes an entry, closes the journal and
// reopens it from the same file.
func TestInitDB_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := setupTestDBFile(t)

	db, err := InitDB(ctx, path)
	require.NoError(t, err)

	s := &models.Submission{Mode: "register", Outcome: models.OutcomeAccepted, Email: "ada@x.com", Name: "Ada"}
	require.NoError(t, NewRepository(db).CreateSubmission(ctx, s))
	require.NoError(t, db.Close())

	db, err = InitDB(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	got, err := NewRepository(db).GetSubmissionByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)
}

func TestInitDB_MigrationsAreIdempotent(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, runMigrations(context.Background(), db))
}
