package lua

import "errors"

// Errors for Lua state operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when execution times out.
	ErrExecutionTimeout = errors.New("lua execution timeout")

	// ErrNoValidateFunc is returned when a validator script does not define
	// a global validate function.
	ErrNoValidateFunc = errors.New("lua validator has no validate function")
)
