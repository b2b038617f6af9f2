package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: journal errors, config errors, unexpected failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: unknown modes, out of range flag values.
	ExitUsage = 2

	// ExitValidation indicates the form did not pass validation.
	ExitValidation = 5
)

// ExitCodeError marks an error that was already reported to the user and
// carries the process exit code for it.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// WithExitCode wraps err with an exit code
func WithExitCode(code int, err error) error {
	return &ExitCodeError{Code: code, Err: err}
}

// ExitCode returns the exit code for err: ExitSuccess for nil, the carried
// code for an ExitCodeError, ExitError otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

// Reported reports whether err was already shown to the user
func Reported(err error) bool {
	var exitErr *ExitCodeError
	return errors.As(err, &exitErr)
}
