package keymap

import "fmt"

// Action is something the form does in response to a key.
type Action uint8

const (
	// ActionNone is the zero Action.
	ActionNone Action = iota

	// ActionQuit leaves the form without submitting.
	ActionQuit

	// ActionNextField moves focus forward, wrapping around.
	ActionNextField

	// ActionPrevField moves focus backward, wrapping around.
	ActionPrevField

	// ActionSubmit validates every field and submits the form.
	ActionSubmit

	// ActionSelectAll selects the focused field's whole text.
	ActionSelectAll

	// ActionClear empties the focused field.
	ActionClear
)

var actionNames = [...]string{
	ActionNone:      "none",
	ActionQuit:      "quit",
	ActionNextField: "next_field",
	ActionPrevField: "prev_field",
	ActionSubmit:    "submit",
	ActionSelectAll: "select_all",
	ActionClear:     "clear",
}

// String returns the action name used in config files.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", a)
}

// ParseAction returns the action with the given name.
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if n == name && Action(i) != ActionNone {
			return Action(i), nil
		}
	}
	return ActionNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}
