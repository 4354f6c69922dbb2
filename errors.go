package stixgraph

import (
	"errors"
	"fmt"

	"github.com/zero-day-ai/stixgraph/graph"
	"github.com/zero-day-ai/stixgraph/source"
)

// Sentinel errors, re-exported from the packages that raise them so
// callers can match with errors.Is against a single import.
var (
	// ErrInvalidMode indicates a graph mode outside {multi, simple}.
	ErrInvalidMode = graph.ErrInvalidMode

	// ErrInvalidSource indicates an unsupported source specifier.
	ErrInvalidSource = source.ErrInvalidSource

	// ErrSourceNotFound indicates a missing bundle file or directory.
	ErrSourceNotFound = source.ErrNotFound

	// ErrParse indicates malformed bundle JSON.
	ErrParse = source.ErrParse

	// ErrFetch indicates a remote bundle could not be retrieved.
	ErrFetch = source.ErrFetch
)

// Error kinds categorize session-fatal errors. Everything that goes
// wrong per object during conversion is a log line, never an error.
const (
	// KindConfiguration represents invalid caller configuration
	// (graph mode, source specifier shape, config file).
	KindConfiguration = "configuration"

	// KindResolution represents failures locating or retrieving a
	// bundle source.
	KindResolution = "resolution"

	// KindParse represents malformed bundle content.
	KindParse = "parse"
)

// Error is a structured error that wraps an underlying error with the
// operation that failed and the category of failure. It supports
// errors.Is and errors.As through Unwrap.
type Error struct {
	// Op is the operation that failed (e.g., "Converter.Build").
	Op string

	// Kind categorizes the error (KindConfiguration, KindResolution, KindParse).
	Kind string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("stixgraph: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("stixgraph: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by Kind (and Op, when the target sets one),
// so callers can probe for a whole category of failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != "" && e.Kind != t.Kind {
		return false
	}
	return t.Op == "" || e.Op == t.Op
}

// sessionError wraps a loader or graph error with the kind implied by
// its sentinel.
func sessionError(op string, err error) error {
	return &Error{Op: op, Kind: kindOf(err), Err: err}
}

func kindOf(err error) string {
	switch {
	case errors.Is(err, source.ErrNotFound), errors.Is(err, source.ErrFetch):
		return KindResolution
	case errors.Is(err, source.ErrParse):
		return KindParse
	default:
		return KindConfiguration
	}
}
