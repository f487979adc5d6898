package mask

import (
	"errors"
	"fmt"
)

// Errors returned by Compile.
var (
	// ErrEmptyMask indicates the mask template is missing or empty.
	ErrEmptyMask = errors.New("mask is empty")

	// ErrNoSlots indicates the mask contains no placeholder markers.
	ErrNoSlots = errors.New("mask has no placeholders")
)

// ConfigurationError describes a mask that cannot be compiled.
// It is fatal: a field cannot be constructed from the mask.
type ConfigurationError struct {
	// Mask is the offending template.
	Mask string
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Mask == "" {
		return fmt.Sprintf("invalid mask: %v", e.Err)
	}
	return fmt.Sprintf("invalid mask %q: %v", e.Mask, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
