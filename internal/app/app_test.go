package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/dublaj/internal/authform"
	"github.com/thenoetrevino/dublaj/internal/config"
	"github.com/thenoetrevino/dublaj/internal/models"
)

func TestNew_WithoutJournal(t *testing.T) {
	a, err := New(context.Background(), config.Default(), WithoutJournal())
	require.NoError(t, err)
	defer a.Close()

	assert.Nil(t, a.Journal)
	assert.Nil(t, a.Repo())
	assert.Len(t, a.Submitter(), 1)
}

func TestNew_DisabledInConfig(t *testing.T) {
	cfg := config.Default()
	off := false
	cfg.Journal.Enabled = &off

	a, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close()

	assert.Nil(t, a.Journal)
}

func TestNewController_JournalsSubmissions(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, config.Default(), WithJournalPath(filepath.Join(t.TempDir(), "journal.db")))
	require.NoError(t, err)
	defer a.Close()
	require.NotNil(t, a.Journal)

	form, err := a.NewController("")
	require.NoError(t, err)
	assert.Equal(t, authform.Login, form.Mode())

	_, err = form.Submit(ctx)
	require.Error(t, err)

	require.NoError(t, form.SetText(authform.Email, "a@b.c"))
	require.NoError(t, form.SetText(authform.Password, "123456"))
	_, err = form.Submit(ctx)
	require.NoError(t, err)

	entries, err := a.Journal.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.OutcomeAccepted, entries[0].Outcome)
	assert.Equal(t, models.OutcomeRejected, entries[1].Outcome)
}

func TestNewController_Mode(t *testing.T) {
	cfg := config.Default()
	cfg.Form.InitialMode = "register"

	a, err := New(context.Background(), cfg, WithoutJournal())
	require.NoError(t, err)

	form, err := a.NewController("")
	require.NoError(t, err)
	assert.Equal(t, authform.Register, form.Mode())

	form, err = a.NewController("LOGIN")
	require.NoError(t, err)
	assert.Equal(t, authform.Login, form.Mode())

	_, err = a.NewController("signup")
	assert.ErrorIs(t, err, authform.ErrUnknownMode)
}
