package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/dublaj/internal/authform"
	"github.com/thenoetrevino/dublaj/internal/config"
	"github.com/thenoetrevino/dublaj/internal/database"
	"github.com/thenoetrevino/dublaj/internal/services/submission"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	Config *config.Config

	// Repository layer, nil when the journal is disabled
	db   *sql.DB
	repo database.DataStore

	// Service layer, nil when the journal is disabled
	Journal submission.Service

	logger *slog.Logger
}

// New creates a new App. The journal database is opened unless the config
// or WithoutJournal disables it.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	appCfg := appConfig{
		journal:     cfg.Journal.IsEnabled(),
		journalPath: cfg.Journal.Path,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(&appCfg)
	}

	a := &App{
		Config: cfg,
		logger: appCfg.logger,
	}

	if !appCfg.journal {
		a.logger.Debug("submission journal disabled")
		return a, nil
	}

	db, err := database.InitDB(ctx, appCfg.journalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	a.db = db
	a.repo = database.NewRepository(db)
	a.Journal = submission.NewService(a.repo, cfg.Journal.MaxEntries)

	return a, nil
}

// Submitter returns the collaborator accepted payloads are handed to:
// the log, and the journal when enabled.
func (a *App) Submitter() authform.Submitter {
	submitters := authform.MultiSubmitter{authform.LogSubmitter{Logger: a.logger}}
	if a.Journal != nil {
		submitters = append(submitters, a.Journal)
	}
	return submitters
}

// NewController creates a form controller wired to Submitter. mode
// overrides the configured initial mode when non-empty.
func (a *App) NewController(mode string) (*authform.Controller, error) {
	if mode == "" {
		mode = a.Config.Form.InitialMode
	}
	initial, err := authform.ParseMode(mode)
	if err != nil {
		return nil, err
	}

	return authform.New(
		authform.WithInitialMode(initial),
		authform.WithSubmitter(a.Submitter()),
		authform.WithLogger(a.logger),
	), nil
}

// Repo returns the underlying repository, nil when the journal is disabled.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close releases the journal database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
