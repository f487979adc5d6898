package engine

import (
	"strings"
)

// DisplayValue returns the text shown to the user: entered characters at
// filled slots, the blank rune at unfilled slots and the template literals
// everywhere else.
func (f *Field) DisplayValue() string {
	return f.overlay(f.opts.Blank)
}

// MaskValue is like DisplayValue but shows the template's placeholder
// marker at unfilled slots.
func (f *Field) MaskValue() string {
	return f.overlay(0)
}

// Value returns the entered characters in slot order, without literals.
func (f *Field) Value() string {
	return f.buf.LogicalString()
}

// overlay renders the buffer over the template. A zero blank keeps the
// placeholder markers.
func (f *Field) overlay(blank rune) string {
	var sb strings.Builder
	sb.Grow(f.tmpl.Len())
	for pos := 0; pos < f.tmpl.Len(); pos++ {
		c := f.tmpl.CharAt(pos)
		if i, ok := f.tmpl.SlotAt(pos); ok {
			if r, ok := f.buf.Get(i); ok {
				c = r
			} else if blank != 0 {
				c = blank
			}
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

// SetValue replaces the value and moves the cursor after the last entered
// character.
//
// A raw value with the template's length and literals is read as a display
// string: each slot position contributes its rune, and a blank leaves the
// slot empty. Any other raw value is consumed left to right into successive
// slots, skipping runes the next slot does not accept; runes left over once
// every slot is filled are dropped.
//
// "0" clears the field unless AllowSetZero is set.
func (f *Field) SetValue(raw string) {
	f.assign(raw, false)
	f.cur.MoveTo(f.mapper.AfterLastOccupied())
	f.refresh()
	f.emit(Event{Kind: EventValueSet})
}

// assign fills the buffer from raw. internal assignments come from the
// field's own host text and are exempt from the zero rule.
func (f *Field) assign(raw string, internal bool) {
	if raw == "0" && !internal && !f.opts.AllowSetZero {
		raw = ""
	}

	f.buf.Reset()
	runes := []rune(raw)

	if f.tmpl.MatchesLiterals(runes) {
		for i := 0; i < f.tmpl.SlotCount(); i++ {
			r := runes[f.tmpl.SlotPosition(i)]
			if r != f.opts.Blank && f.tmpl.Accepts(i, r) {
				_ = f.buf.Set(i, r)
			}
		}
		return
	}

	i := 0
	for _, r := range runes {
		if i >= f.tmpl.SlotCount() {
			break
		}
		if f.tmpl.Accepts(i, r) {
			_ = f.buf.Set(i, r)
			i++
		}
	}
}
