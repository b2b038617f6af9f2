package authform

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrUnknownField is returned when a wire name does not name a form field
	ErrUnknownField = errors.New("unknown form field")

	// ErrUnknownMode is returned when a mode name cannot be parsed
	ErrUnknownMode = errors.New("unknown form mode")

	// ErrKindMismatch is returned when a text value targets a toggle field or the reverse
	ErrKindMismatch = errors.New("value kind does not match field")

	// ErrInvalidToggle is returned when a raw toggle value is neither true nor false
	ErrInvalidToggle = errors.New("invalid toggle value")

	// ErrClosed is returned by Submit after the form has been closed
	ErrClosed = errors.New("form is closed")
)

// ErrorMap holds the active field-level validation messages.
// A field without an entry has no error.
type ErrorMap map[Field]string

// Clone returns an independent copy of the map. A nil map clones to an empty one.
func (e ErrorMap) Clone() ErrorMap {
	out := make(ErrorMap, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Fields returns the fields with errors in form order.
func (e ErrorMap) Fields() []Field {
	fields := make([]Field, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })
	return fields
}

// Strings converts the map to wire-name keys, used for JSON output.
func (e ErrorMap) Strings() map[string]string {
	out := make(map[string]string, len(e))
	for f, msg := range e {
		out[f.String()] = msg
	}
	return out
}

// ValidationError reports that the current fields did not pass validation.
type ValidationError struct {
	Errors ErrorMap
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, f := range e.Errors.Fields() {
		parts = append(parts, f.String()+": "+e.Errors[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationError extracts a *ValidationError from err, if any.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
