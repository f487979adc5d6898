package keymap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/maskfield/internal/input/key"
)

// Errors returned by keymap operations.
var (
	// ErrUnknownAction indicates an action name that does not exist.
	ErrUnknownAction = errors.New("unknown action")

	// ErrInvalidKey indicates a key spec that does not parse.
	ErrInvalidKey = errors.New("invalid key")
)

// Binding is a single key-to-action mapping.
type Binding struct {
	Key    key.Event
	Action Action
}

// Keymap holds the form's key bindings. A key maps to at most one action;
// an action may have several keys.
type Keymap struct {
	bindings map[key.Event]Action
}

// New creates an empty keymap.
func New() *Keymap {
	return &Keymap{bindings: make(map[key.Event]Action)}
}

// Default returns the standard form bindings.
func Default() *Keymap {
	km := New()
	km.add("<C-q>", ActionQuit)
	km.add("<Esc>", ActionQuit)
	km.add("<Tab>", ActionNextField)
	km.add("<Backtab>", ActionPrevField)
	km.add("<CR>", ActionSubmit)
	km.add("<C-a>", ActionSelectAll)
	km.add("<C-u>", ActionClear)
	return km
}

func (km *Keymap) add(spec string, action Action) {
	km.bindings[key.MustParse(spec)] = action
}

// Bind maps spec to action, replacing any action spec had.
func (km *Keymap) Bind(spec string, action Action) error {
	ev, err := key.Parse(spec)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidKey, spec, err)
	}
	km.bindings[ev] = action
	return nil
}

// Unbind removes every key bound to action.
func (km *Keymap) Unbind(action Action) {
	for ev, a := range km.bindings {
		if a == action {
			delete(km.bindings, ev)
		}
	}
}

// Lookup returns the action bound to ev.
func (km *Keymap) Lookup(ev key.Event) (Action, bool) {
	a, ok := km.bindings[ev]
	return a, ok
}

// Keys returns the keys bound to action, sorted by their spec.
func (km *Keymap) Keys(action Action) []key.Event {
	var out []key.Event
	for ev, a := range km.bindings {
		if a == action {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}

// Bindings returns every binding, sorted by action then key.
func (km *Keymap) Bindings() []Binding {
	out := make([]Binding, 0, len(km.bindings))
	for ev, a := range km.bindings {
		out = append(out, Binding{Key: ev, Action: a})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Action != out[j].Action {
			return out[i].Action < out[j].Action
		}
		return out[i].Key.String() < out[j].Key.String()
	})
	return out
}

// Apply rebinds actions from a config table of action name to key specs.
// An action listed in overrides loses its default keys; an empty list
// leaves it unbound.
func (km *Keymap) Apply(overrides map[string][]string) error {
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action, err := ParseAction(name)
		if err != nil {
			return err
		}
		km.Unbind(action)
		for _, spec := range overrides[name] {
			if err := km.Bind(spec, action); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}
	return nil
}
