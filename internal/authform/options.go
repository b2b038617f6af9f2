package authform

import "log/slog"

// Option configures a Controller
type Option func(*options)

type options struct {
	initialMode Mode
	submitter   Submitter
	logger      *slog.Logger
}

// WithInitialMode sets the mode used on construction and Reset
func WithInitialMode(mode Mode) Option {
	return func(o *options) {
		if mode.Valid() {
			o.initialMode = mode
		}
	}
}

// WithSubmitter sets the collaborator that receives validated payloads
func WithSubmitter(s Submitter) Option {
	return func(o *options) {
		if s != nil {
			o.submitter = s
		}
	}
}

// WithLogger sets the logger for the controller
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
