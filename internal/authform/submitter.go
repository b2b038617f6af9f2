package authform

import (
	"context"
	"errors"
	"log/slog"
)

// Submitter receives payloads that passed validation.
type Submitter interface {
	Submit(ctx context.Context, payload Payload) error
}

// RejectionRecorder is optionally implemented by a Submitter that also wants
// to hear about submits that failed validation.
type RejectionRecorder interface {
	RecordRejected(ctx context.Context, mode Mode, fields Fields, errs ErrorMap) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, payload Payload) error

func (f SubmitterFunc) Submit(ctx context.Context, payload Payload) error {
	return f(ctx, payload)
}

// NopSubmitter discards payloads.
type NopSubmitter struct{}

func (NopSubmitter) Submit(context.Context, Payload) error { return nil }

// LogSubmitter writes accepted payloads to a logger, passwords redacted.
type LogSubmitter struct {
	Logger *slog.Logger
}

func (s LogSubmitter) Submit(ctx context.Context, payload Payload) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "form submitted", "payload", payload)
	return nil
}

// MultiSubmitter fans a payload out to several submitters. Every submitter is
// called; their errors are joined.
type MultiSubmitter []Submitter

func (m MultiSubmitter) Submit(ctx context.Context, payload Payload) error {
	var errs []error
	for _, s := range m {
		if err := s.Submit(ctx, payload); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RecordRejected forwards to every member that implements RejectionRecorder.
func (m MultiSubmitter) RecordRejected(ctx context.Context, mode Mode, fields Fields, errs ErrorMap) error {
	var out []error
	for _, s := range m {
		if r, ok := s.(RejectionRecorder); ok {
			if err := r.RecordRejected(ctx, mode, fields, errs); err != nil {
				out = append(out, err)
			}
		}
	}
	return errors.Join(out...)
}
