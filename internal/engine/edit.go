package engine

import (
	"go.uber.org/zap"
)

// typeRune stores r at the cursor.
//
// In Insert mode later characters shift right first, and the target slot
// never lies beyond the first empty slot after the data, so typing cannot
// open a gap. In Overwrite mode the slot is replaced in place.
func (f *Field) typeRune(r rune) KeyResult {
	if f.fullySelected() {
		if !f.tmpl.Accepts(0, r) {
			return f.reject(r)
		}
		f.buf.Reset()
		f.cur.MoveTo(f.mapper.First())
	}

	i, ok := f.tmpl.SlotAtOrAfter(f.cur.Position())
	if !ok {
		return f.reject(r)
	}
	insert := f.modes.IsInsert()
	if insert {
		i = min(i, f.mapper.NextEmptySlot())
	}
	if !f.tmpl.Accepts(i, r) {
		return f.reject(r)
	}
	if insert {
		if err := f.buf.ShiftRight(i); err != nil {
			return f.reject(r)
		}
	}
	if err := f.buf.Set(i, r); err != nil {
		return f.reject(r)
	}

	f.cur.MoveTo(f.mapper.Next(f.tmpl.SlotPosition(i)))
	f.refresh()
	f.emit(Event{Kind: EventKeyAccepted, Rune: r})
	return changed
}

func (f *Field) reject(r rune) KeyResult {
	f.logger.Debug("input rejected",
		zap.String("rune", string(r)),
		zap.Int("pos", f.cur.Position()),
		zap.Stringer("mode", f.modes.Current()),
	)
	f.emit(Event{Kind: EventKeyRejected, Rune: r, Err: ErrInputRejected})
	return rejected
}

// backspace moves to the previous filled slot and removes it.
// Nothing is removed when the cursor is already at or before the first
// filled slot.
func (f *Field) backspace() KeyResult {
	if f.fullySelected() {
		return f.clearAll()
	}

	pos := f.cur.Position()
	prev := f.mapper.Previous(pos)
	removed := false
	if prev < pos {
		if i, ok := f.tmpl.SlotAt(prev); ok && f.buf.Has(i) {
			removed = f.remove(i)
		}
	}

	f.cur.MoveTo(prev)
	f.refresh()
	if !removed {
		return consumed
	}
	f.emit(Event{Kind: EventDeleted})
	return changed
}

// deleteForward removes the character at the cursor. Insert mode closes the
// gap; Overwrite mode only clears the slot the cursor is exactly on.
func (f *Field) deleteForward() KeyResult {
	if f.fullySelected() {
		return f.clearAll()
	}

	pos := f.cur.Position()
	removed := false
	if f.modes.IsInsert() {
		if i, ok := f.tmpl.SlotAtOrAfter(pos); ok && f.buf.Has(i) {
			removed = f.remove(i)
		}
	} else if i, ok := f.tmpl.SlotAt(pos); ok && f.buf.Has(i) {
		removed = f.buf.Clear(i) == nil
	}

	f.refresh()
	if !removed {
		return consumed
	}
	f.emit(Event{Kind: EventDeleted})
	return changed
}

// remove deletes slot i. Simple masks compact the following characters one
// slot left; complex masks only clear the slot, since a shifted character
// could land in a slot of another class.
func (f *Field) remove(i int) bool {
	var err error
	if f.tmpl.IsComplex() {
		err = f.buf.Clear(i)
	} else {
		err = f.buf.RemoveCompact(i)
	}
	if err != nil {
		f.logger.Debug("remove failed", zap.Int("slot", i), zap.Error(err))
		return false
	}
	return true
}

func (f *Field) clearAll() KeyResult {
	wasEmpty := f.buf.IsEmpty()
	f.buf.Reset()
	f.cur.MoveTo(f.mapper.First())
	f.refresh()
	if wasEmpty {
		return consumed
	}
	f.emit(Event{Kind: EventCleared})
	return changed
}
