package app

import "log/slog"

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	journal     bool
	journalPath string
	logger      *slog.Logger
}

// WithoutJournal disables the submission journal regardless of config
func WithoutJournal() Option {
	return func(cfg *appConfig) {
		cfg.journal = false
	}
}

// WithJournalPath overrides the journal database location
func WithJournalPath(path string) Option {
	return func(cfg *appConfig) {
		cfg.journalPath = path
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
