package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/maskfield/internal/input/mode"
)

// EventKind identifies what happened to a field.
type EventKind uint8

const (
	// EventKeyAccepted is a typed rune stored in the buffer.
	EventKeyAccepted EventKind = iota

	// EventKeyRejected is a typed rune that did not fit.
	EventKeyRejected

	// EventDeleted is a Backspace or Delete that removed a rune.
	EventDeleted

	// EventCleared is the whole value removed at once.
	EventCleared

	// EventModeChanged is a switch between Insert and Overwrite.
	EventModeChanged

	// EventValueSet is a SetValue call.
	EventValueSet

	// EventPasteApplied is the deferred half of a paste completing.
	EventPasteApplied

	// EventValidationFailed is a Validate call that returned an error.
	EventValidationFailed
)

var eventKindNames = [...]string{
	EventKeyAccepted:      "key_accepted",
	EventKeyRejected:      "key_rejected",
	EventDeleted:          "deleted",
	EventCleared:          "cleared",
	EventModeChanged:      "mode_changed",
	EventValueSet:         "value_set",
	EventPasteApplied:     "paste_applied",
	EventValidationFailed: "validation_failed",
}

// String returns the event kind name.
func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", k)
}

// Event describes one change to a field.
type Event struct {
	Kind    EventKind
	FieldID uuid.UUID
	Field   string

	// Rune is set for key events.
	Rune rune

	// Mode is the mode after the event.
	Mode mode.Mode

	// Err is ErrInputRejected for rejected keys and the validation error
	// for failed validations.
	Err error
}

// Observer receives field events synchronously, on the event goroutine.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) {
	f(e)
}
