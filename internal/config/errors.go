package config

import (
	"errors"
	"fmt"
)

// ErrMalformedProfile marks a declaration that cannot become a profile:
// bad syntax, a value of the wrong shape, an invalid key or a missing
// required key. It is fatal and aborts the build before compilation starts.
var ErrMalformedProfile = errors.New("malformed profile")

// Malformed wraps a format-specific problem with ErrMalformedProfile.
func Malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedProfile, fmt.Sprintf(format, args...))
}
