package cursor

import (
	"github.com/dshills/maskfield/internal/engine/buffer"
	"github.com/dshills/maskfield/internal/mask"
)

// Mapper converts display positions to slot positions.
// It reads the buffer on every call, so results always reflect the current
// field contents.
type Mapper struct {
	tmpl *mask.Template
	buf  *buffer.Buffer
}

// NewMapper creates a mapper over a template and the buffer that fills it.
func NewMapper(tmpl *mask.Template, buf *buffer.Buffer) *Mapper {
	return &Mapper{tmpl: tmpl, buf: buf}
}

// First returns the display position of the first slot.
func (m *Mapper) First() int {
	return m.tmpl.FirstSlot()
}

// End returns the position just past the last slot.
func (m *Mapper) End() int {
	return m.tmpl.LastSlot() + 1
}

// Landing snaps p onto the first slot at or after it, or End if p is past
// the last slot. An empty field always lands on the first slot.
func (m *Mapper) Landing(p int) int {
	if m.buf.IsEmpty() {
		return m.First()
	}
	if i, ok := m.tmpl.SlotAtOrAfter(p); ok {
		return m.tmpl.SlotPosition(i)
	}
	return m.End()
}

// Previous returns the position of the last occupied slot before p, or the
// first slot if there is none.
func (m *Mapper) Previous(p int) int {
	occupied := m.buf.Occupied()
	for j := len(occupied) - 1; j >= 0; j-- {
		if pos := m.tmpl.SlotPosition(occupied[j]); pos < p {
			return pos
		}
	}
	return m.First()
}

// Next returns the position to advance to from p.
//
// From the last slot (or beyond) it returns End, marking the field complete.
// Otherwise it moves to the following slot, but never past the first empty
// slot after the last occupied one: from the last occupied slot it lands on
// the next unfilled slot, and from that unfilled slot it stays put.
// An empty field always returns the first slot.
func (m *Mapper) Next(p int) int {
	if m.buf.IsEmpty() {
		return m.First()
	}
	if p >= m.tmpl.LastSlot() {
		return m.End()
	}

	limit := m.buf.LastOccupied() + 1
	i, _ := m.tmpl.SlotAtOrAfter(p + 1)
	if i > limit {
		return p
	}
	return m.tmpl.SlotPosition(i)
}

// AfterLastOccupied returns the position just after the last occupied slot:
// the next unfilled slot, End when the last slot is occupied, or the first
// slot for an empty field.
func (m *Mapper) AfterLastOccupied() int {
	lo := m.buf.LastOccupied()
	switch {
	case lo < 0:
		return m.First()
	case lo == m.tmpl.SlotCount()-1:
		return m.End()
	default:
		return m.tmpl.SlotPosition(lo + 1)
	}
}

// NextEmptySlot returns the index of the slot following the last occupied
// one, or SlotCount if the last slot is occupied.
func (m *Mapper) NextEmptySlot() int {
	return m.buf.LastOccupied() + 1
}
