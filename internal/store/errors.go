package store

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrDuplicate indicates an add with a URL that already exists.
	ErrDuplicate = errors.New("bookmark already exists")
	// ErrNotFound indicates a delete target that matched nothing.
	ErrNotFound = errors.New("bookmark not found")
)

// ValidationError reports a rejected field on add or search.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
