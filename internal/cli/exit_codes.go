package cli

import (
	"errors"
	"fmt"
)

// Exit codes for the changelogkyper CLI
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates any user-facing error
	ExitFailure = 1

	// ExitAborted indicates the user cancelled an interactive prompt
	ExitAborted = 130
)

// ExitError is an error that carries an explicit process exit code.
type ExitError struct {
	Code int
	Err  error
}

// NewExitError wraps err with an exit code. Codes below 1 become ExitFailure.
func NewExitError(code int, err error) *ExitError {
	if code < 1 {
		code = ExitFailure
	}
	return &ExitError{Code: code, Err: err}
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap enables errors.Is/As to traverse the underlying cause.
func (e *ExitError) Unwrap() error { return e.Err }

// ExitCodeOf extracts an exit code from any error, defaulting to ExitFailure.
func ExitCodeOf(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
