package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrInputRejected indicates a keystroke did not fit the slot at the
	// cursor. It is reported to observers only; hosts never see it.
	ErrInputRejected = errors.New("input rejected")

	// ErrInvalidBlank indicates the blank rune could be mistaken for data.
	ErrInvalidBlank = errors.New("blank must be a printable non-alphanumeric rune")

	// ErrInvalidToggleKey indicates the mode toggle key spec does not parse.
	ErrInvalidToggleKey = errors.New("invalid toggle key")
)
