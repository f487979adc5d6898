package lua

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/maskfield/internal/engine"
)

const validateFunc = "validate"

// DefaultRejectMessage is reported when validate returns false.
const DefaultRejectMessage = "invalid value"

// Validator is an engine.Validator backed by a Lua validate function.
type Validator struct {
	name  string
	state *State
}

// NewValidator loads source into a fresh sandboxed state. name identifies
// the script in error messages.
func NewValidator(name, source string, opts ...StateOption) (*Validator, error) {
	state := NewState(opts...)
	if err := state.DoString(source); err != nil {
		state.Close()
		return nil, fmt.Errorf("loading lua validator %s: %w", name, err)
	}
	if !state.HasFunction(validateFunc) {
		state.Close()
		return nil, fmt.Errorf("loading lua validator %s: %w", name, ErrNoValidateFunc)
	}
	return &Validator{name: name, state: state}, nil
}

// Name returns the script name.
func (v *Validator) Name() string {
	return v.name
}

// Validate calls validate(value, masked). Script errors and timeouts are
// reported as validation failures that wrap the cause.
func (v *Validator) Validate(value, masked string) error {
	results, err := v.state.Call(validateFunc, lua.LString(value), lua.LString(masked))
	if err != nil {
		return &engine.ValidationError{
			Code:    engine.CodeCustom,
			Message: fmt.Sprintf("validator %s failed", v.name),
			Err:     err,
		}
	}
	if len(results) == 0 {
		return nil
	}

	switch r := results[0].(type) {
	case lua.LString:
		if r == "" {
			return nil
		}
		return &engine.ValidationError{Code: engine.CodeCustom, Message: string(r)}
	case lua.LBool:
		if r {
			return nil
		}
		return &engine.ValidationError{Code: engine.CodeCustom, Message: DefaultRejectMessage}
	default:
		if r == lua.LNil {
			return nil
		}
		return &engine.ValidationError{
			Code:    engine.CodeCustom,
			Message: fmt.Sprintf("validator %s returned %s", v.name, r.Type()),
		}
	}
}

// Close releases the Lua state.
func (v *Validator) Close() error {
	return v.state.Close()
}
