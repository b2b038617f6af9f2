// Package authform holds the state and validation rules of the login /
// registration form. It has no knowledge of how the form is drawn: a view
// forwards input events into a Controller and reads mode, fields and errors
// back out.
package authform

import (
	"context"
	"fmt"
	"log/slog"
)

// Controller owns the form state for the lifetime of one displayed form.
// It is not safe for concurrent use; the owning event loop serialises calls.
type Controller struct {
	initialMode Mode
	mode        Mode
	fields      Fields
	errors      ErrorMap
	closed      bool

	submitter Submitter
	logger    *slog.Logger
}

// New creates a controller with empty fields in Login mode unless
// WithInitialMode says otherwise.
func New(opts ...Option) *Controller {
	cfg := options{
		initialMode: Login,
		submitter:   NopSubmitter{},
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Controller{
		initialMode: cfg.initialMode,
		submitter:   cfg.submitter,
		logger:      cfg.logger,
	}
	c.Reset()
	return c
}

// Reset returns the form to its freshly opened state.
func (c *Controller) Reset() {
	c.mode = c.initialMode
	c.fields = Fields{}
	c.errors = ErrorMap{}
	c.closed = false
}

// Close ends the form's lifetime. Later submits fail with ErrClosed.
func (c *Controller) Close() {
	c.closed = true
	c.logger.Debug("auth form closed", "mode", c.mode)
}

// Closed reports whether Close has been called since the last Reset.
func (c *Controller) Closed() bool {
	return c.closed
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// SetMode switches the form to mode. Fields and errors are kept as they are.
func (c *Controller) SetMode(mode Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
	c.mode = mode
	return nil
}

// ToggleMode switches to the other mode and returns it.
func (c *Controller) ToggleMode() Mode {
	c.mode = c.mode.Toggle()
	return c.mode
}

// Fields returns a copy of the current field values.
func (c *Controller) Fields() Fields {
	return c.fields
}

// Errors returns a copy of the errors from the last validation pass.
func (c *Controller) Errors() ErrorMap {
	return c.errors.Clone()
}

// Error returns the message recorded for field, if any.
func (c *Controller) Error(field Field) (string, bool) {
	msg, ok := c.errors[field]
	return msg, ok
}

// SetField overwrites exactly one field. Nothing else changes.
func (c *Controller) SetField(field Field, value Value) error {
	if _, ok := fieldNames[field]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownField, int(field))
	}
	if field.Kind() != value.Kind {
		return fmt.Errorf("%w: %s wants %s, got %s", ErrKindMismatch, field, field.Kind(), value.Kind)
	}
	c.fields.set(field, value)
	return nil
}

// SetText stores a text value.
func (c *Controller) SetText(field Field, text string) error {
	return c.SetField(field, Text(text))
}

// SetRememberMe stores the remember-me toggle.
func (c *Controller) SetRememberMe(checked bool) {
	c.fields.RememberMe = checked
}

// SetRaw is the string-keyed entry point for views that only know wire names.
func (c *Controller) SetRaw(name, raw string, kind ValueKind) error {
	field, err := ParseField(name)
	if err != nil {
		return err
	}
	value, err := ParseValue(raw, kind)
	if err != nil {
		return err
	}
	return c.SetField(field, value)
}

// Relevant reports whether field is used by the current mode.
func (c *Controller) Relevant(field Field) bool {
	return Relevant(c.mode, field)
}

// VisibleFields lists the fields of the current mode in display order.
func (c *Controller) VisibleFields() []Field {
	return VisibleFields(c.mode)
}

// Validate recomputes the error map from the current fields and mode,
// replacing the previous one in full. With no errors it returns the payload;
// otherwise a *ValidationError and a zero Payload.
func (c *Controller) Validate() (Payload, error) {
	errs := validateFields(c.mode, c.fields)
	c.errors = errs
	if len(errs) > 0 {
		return Payload{}, &ValidationError{Errors: errs.Clone()}
	}
	return newPayload(c.mode, c.fields), nil
}

// Submit validates and, on success, hands the payload to the submitter.
// A failed validation only updates the errors.
func (c *Controller) Submit(ctx context.Context) (Payload, error) {
	if c.closed {
		return Payload{}, ErrClosed
	}

	payload, err := c.Validate()
	if err != nil {
		c.logger.Debug("auth form rejected", "mode", c.mode, "error_fields", len(c.errors))
		if recorder, ok := c.submitter.(RejectionRecorder); ok {
			if recErr := recorder.RecordRejected(ctx, c.mode, c.fields, c.errors.Clone()); recErr != nil {
				c.logger.Error("failed to record rejected submission", "error", recErr)
			}
		}
		return Payload{}, err
	}

	if err := c.submitter.Submit(ctx, payload); err != nil {
		return payload, fmt.Errorf("submit %s form: %w", c.mode, err)
	}
	c.logger.Info("auth form submitted", "payload", payload)
	return payload, nil
}
