package fragment

import (
	"errors"
	"fmt"
)

// ErrNoFragments is returned when a release finds nothing pending.
var ErrNoFragments = errors.New("no pending changelog fragments")

// Title errors returned by CheckTitle.
var (
	ErrEmptyTitle     = errors.New("title must not be empty")
	ErrMultilineTitle = errors.New("title must be a single line")
)

// ParseError reports a malformed fragment record. It aborts the whole
// release: skipping the record would silently drop a change from history.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing fragment %s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("parsing fragment %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsParseError returns true if err is or wraps a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
