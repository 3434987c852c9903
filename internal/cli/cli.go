package cli

import (
	"context"
	"errors"
	"io"

	"github.com/specialistvlad/toolprofile/internal/config"
	"github.com/specialistvlad/toolprofile/internal/profile"
)

// Exit codes.
const (
	ExitFailure       = 1
	ExitUsage         = 2
	ExitMalformed     = 3
	ExitNotConfigured = 4
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Execute runs the command line in args. Command output goes to outW, logs
// and diagnostics to errW. Every non-nil error returned is an *ExitError.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	root := newRootCommand(outW, errW)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	// Anything cobra rejected before a command ran is a usage error.
	return &ExitError{Code: ExitUsage, Message: err.Error()}
}

// exitFor maps an application error to its exit code.
func exitFor(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, profile.ErrFeatureNotConfigured):
		return &ExitError{Code: ExitNotConfigured, Message: err.Error()}
	case errors.Is(err, config.ErrMalformedProfile):
		return &ExitError{Code: ExitMalformed, Message: err.Error()}
	default:
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}
}
