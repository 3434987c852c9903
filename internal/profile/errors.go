package profile

import (
	"errors"
	"strings"

	"github.com/specialistvlad/toolprofile/internal/config"
)

var (
	// ErrMalformedProfile indicates a required key is absent or a value has
	// the wrong shape. It aborts the build.
	ErrMalformedProfile = config.ErrMalformedProfile

	// ErrFeatureNotConfigured indicates an optional subsystem has no declared
	// keys. The orchestrator skips that subsystem.
	ErrFeatureNotConfigured = errors.New("feature not configured")
)

// Error wraps an error with the operation and key it concerns.
type Error struct {
	Op     string // Operation that failed: "load" or "resolve"
	Key    string // Declared key or feature name, if applicable
	Pos    string // Source position, if known
	Detail string
	Err    error // Underlying error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Key != "" {
		b.WriteString(" ")
		b.WriteString(e.Key)
	}
	if e.Pos != "" {
		b.WriteString(" (")
		b.WriteString(e.Pos)
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}
