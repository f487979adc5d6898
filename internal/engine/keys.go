package engine

import (
	"github.com/dshills/maskfield/internal/input/key"
)

// KeyResult reports how a field handled a key event.
type KeyResult struct {
	// Consumed is true when the host must suppress its default handling.
	Consumed bool

	// Changed is true when the value was modified.
	Changed bool

	// Rejected is true when a printable key did not fit the slot at the
	// cursor. Rejected keys are still consumed.
	Rejected bool
}

var (
	passThrough = KeyResult{}
	consumed    = KeyResult{Consumed: true}
	changed     = KeyResult{Consumed: true, Changed: true}
	rejected    = KeyResult{Consumed: true, Rejected: true}
)

// HandleKey applies a key event.
//
// The field intercepts printable runes, Backspace, Delete, Home, End, the
// arrow keys and the mode toggle key. Everything else, including any key
// chorded with Ctrl, Alt or Meta, passes through unconsumed so the host can
// handle it (focus traversal, select-all, copy).
func (f *Field) HandleKey(ev key.Event) KeyResult {
	if ev.Equals(f.toggle) {
		f.ToggleMode()
		return consumed
	}
	if ev.IsModified() {
		return passThrough
	}

	f.syncSelection()

	switch ev.Key {
	case key.KeyRune:
		if !ev.IsChar() {
			return passThrough
		}
		return f.typeRune(ev.Rune)
	case key.KeyBackspace:
		return f.backspace()
	case key.KeyDelete:
		return f.deleteForward()
	case key.KeyHome:
		f.moveTo(f.mapper.First())
	case key.KeyEnd:
		f.moveTo(f.mapper.AfterLastOccupied())
	case key.KeyLeft, key.KeyUp:
		f.moveTo(f.mapper.Previous(f.cur.Position()))
	case key.KeyRight, key.KeyDown:
		f.moveTo(f.mapper.Next(f.cur.Position()))
	default:
		return passThrough
	}
	return consumed
}

// SelectAll selects the whole display text. The next printable key replaces
// the value; the next Backspace or Delete clears it.
func (f *Field) SelectAll() {
	f.cur.Select(0, f.tmpl.Len())
	f.host.SetSelection(0, f.tmpl.Len())
}

// Focus gives the field focus and lands the cursor on the slot at or after
// the host's current selection start.
func (f *Field) Focus() {
	f.focused = true
	start, _ := f.host.Selection()
	f.cur.MoveTo(f.mapper.Landing(start))
	f.refresh()
}

// Blur removes focus, re-reads the host text into the buffer and validates
// the result.
func (f *Field) Blur() error {
	f.focused = false
	f.assign(f.host.Text(), true)
	f.refresh()
	return f.Validate()
}

// Click moves the cursor to the slot at or after display position p.
func (f *Field) Click(p int) {
	f.cur.MoveTo(f.mapper.Landing(p))
	f.placeCursor()
}

// RightClick behaves like Click, except that a selection covering the whole
// field is kept so a context menu can act on it.
func (f *Field) RightClick(p int) {
	f.syncSelection()
	if f.fullySelected() {
		return
	}
	f.Click(p)
}

func (f *Field) moveTo(pos int) {
	f.cur.MoveTo(pos)
	f.placeCursor()
}
