package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDependency reports a collaborator that cannot serve its role.
	ErrInvalidDependency = errors.New("invalid dependency")
	// ErrOutOfRange reports an address or coordinate outside declared bounds.
	ErrOutOfRange = errors.New("out of range")
	// ErrMalformedConfiguration reports inconsistent sizes or options.
	ErrMalformedConfiguration = errors.New("malformed configuration")
)

// Malformed wraps ErrMalformedConfiguration with a formatted detail.
func Malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedConfiguration, fmt.Sprintf(format, args...))
}

// InvalidDependency wraps ErrInvalidDependency with a formatted detail.
func InvalidDependency(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidDependency, fmt.Sprintf(format, args...))
}

// OutOfRange panics with an error wrapping ErrOutOfRange. Indexing outside a
// store or topology is a programming error.
func OutOfRange(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrOutOfRange, fmt.Sprintf(format, args...)))
}
