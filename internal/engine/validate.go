package engine

import (
	"errors"

	"go.uber.org/zap"
)

// Code classifies a validation failure.
type Code string

// Validation failure codes.
const (
	CodeRequired Code = "required"
	CodePartial  Code = "partial"
	CodeCustom   Code = "custom"
)

// ValidationError is a rule the current value fails. It is meant to be
// shown next to the field; the field stays editable.
type ValidationError struct {
	Code    Code
	Message string

	// Err is the cause reported by a custom validator, if any.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validator is a custom validation rule.
// value is the entered data, masked the MaskValue of the field.
type Validator interface {
	Validate(value, masked string) error
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(value, masked string) error

// Validate calls f(value, masked).
func (f ValidatorFunc) Validate(value, masked string) error {
	return f(value, masked)
}

// Validate checks the current value and remembers the result for
// LastError. It returns nil or a *ValidationError.
//
// Rules run in order and the first failure wins: a required value, a
// complete value, then each custom validator. An empty value that is
// allowed to be blank skips the remaining rules.
func (f *Field) Validate() error {
	err := f.validate()
	f.lastErr = err
	if err != nil {
		f.logger.Debug("validation failed", zap.Error(err))
		f.emit(Event{Kind: EventValidationFailed, Err: err})
	}
	return err
}

// AppendErrors validates the field and appends the failure, if any, to dst.
func (f *Field) AppendErrors(dst []error) []error {
	if err := f.Validate(); err != nil {
		return append(dst, err)
	}
	return dst
}

func (f *Field) validate() error {
	value := f.Value()
	if value == "" {
		if f.opts.AllowBlank {
			return nil
		}
		return &ValidationError{Code: CodeRequired, Message: "value required"}
	}

	if !f.opts.AllowPartial && !f.buf.IsFull() {
		return &ValidationError{
			Code:    CodePartial,
			Message: "must match mask format " + f.tmpl.String(),
		}
	}

	masked := f.MaskValue()
	for _, v := range f.validators {
		err := v.Validate(value, masked)
		if err == nil {
			continue
		}
		var ve *ValidationError
		if errors.As(err, &ve) {
			return ve
		}
		return &ValidationError{Code: CodeCustom, Message: err.Error(), Err: err}
	}
	return nil
}
