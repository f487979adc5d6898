package buffer

import (
	"errors"
	"strings"
)

// Errors returned by buffer operations.
var (
	ErrSlotOutOfRange = errors.New("slot index out of range")
	ErrBufferFull     = errors.New("last slot is occupied")
)

type slot struct {
	r  rune
	ok bool
}

// Buffer is a fixed-size sparse array of runes.
type Buffer struct {
	slots    []slot
	occupied []int
}

// New creates an empty buffer with n slots.
func New(n int) *Buffer {
	if n < 0 {
		n = 0
	}
	return &Buffer{slots: make([]slot, n)}
}

// Len returns the number of slots.
func (b *Buffer) Len() int {
	return len(b.slots)
}

// Count returns the number of occupied slots.
func (b *Buffer) Count() int {
	return len(b.occupied)
}

// IsEmpty returns true if no slot is occupied.
func (b *Buffer) IsEmpty() bool {
	return len(b.occupied) == 0
}

// IsFull returns true if every slot is occupied.
func (b *Buffer) IsFull() bool {
	return len(b.slots) > 0 && len(b.occupied) == len(b.slots)
}

// Set stores r in slot i.
func (b *Buffer) Set(i int, r rune) error {
	if !b.valid(i) {
		return ErrSlotOutOfRange
	}
	b.slots[i] = slot{r: r, ok: true}
	b.reindex()
	return nil
}

// Clear empties slot i.
func (b *Buffer) Clear(i int) error {
	if !b.valid(i) {
		return ErrSlotOutOfRange
	}
	b.slots[i] = slot{}
	b.reindex()
	return nil
}

// Get returns the rune in slot i and whether the slot is occupied.
func (b *Buffer) Get(i int) (rune, bool) {
	if !b.valid(i) {
		return 0, false
	}
	s := b.slots[i]
	return s.r, s.ok
}

// Has returns true if slot i is occupied.
func (b *Buffer) Has(i int) bool {
	_, ok := b.Get(i)
	return ok
}

// Occupied returns the indices of occupied slots in increasing order.
// The returned slice is a copy.
func (b *Buffer) Occupied() []int {
	out := make([]int, len(b.occupied))
	copy(out, b.occupied)
	return out
}

// LastOccupied returns the highest occupied index, or -1 if empty.
func (b *Buffer) LastOccupied() int {
	if len(b.occupied) == 0 {
		return -1
	}
	return b.occupied[len(b.occupied)-1]
}

// Reset empties every slot.
func (b *Buffer) Reset() {
	for i := range b.slots {
		b.slots[i] = slot{}
	}
	b.occupied = b.occupied[:0]
}

// ShiftRight moves every occupied slot at or after from one slot to the right,
// highest index first so nothing is overwritten before it is read.
// Slot from is empty afterwards. Returns ErrBufferFull without changing
// anything if the move would push a rune past the last slot.
func (b *Buffer) ShiftRight(from int) error {
	if !b.valid(from) {
		return ErrSlotOutOfRange
	}

	last := len(b.slots) - 1
	if b.slots[last].ok && b.hasOccupiedFrom(from) {
		return ErrBufferFull
	}

	for j := len(b.occupied) - 1; j >= 0; j-- {
		idx := b.occupied[j]
		if idx < from {
			break
		}
		b.slots[idx+1] = b.slots[idx]
		b.slots[idx] = slot{}
	}
	b.reindex()
	return nil
}

// RemoveCompact empties slot i and moves every later occupied slot one slot
// to the left.
func (b *Buffer) RemoveCompact(i int) error {
	if !b.valid(i) {
		return ErrSlotOutOfRange
	}

	b.slots[i] = slot{}
	for _, idx := range b.occupied {
		if idx <= i {
			continue
		}
		b.slots[idx-1] = b.slots[idx]
		b.slots[idx] = slot{}
	}
	b.reindex()
	return nil
}

// LogicalString joins the occupied runes in slot order. Empty slots are
// skipped, so the result holds entered data only.
func (b *Buffer) LogicalString() string {
	var sb strings.Builder
	sb.Grow(len(b.occupied))
	for _, idx := range b.occupied {
		sb.WriteRune(b.slots[idx].r)
	}
	return sb.String()
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{slots: make([]slot, len(b.slots))}
	copy(c.slots, b.slots)
	c.reindex()
	return c
}

func (b *Buffer) valid(i int) bool {
	return i >= 0 && i < len(b.slots)
}

func (b *Buffer) hasOccupiedFrom(from int) bool {
	return len(b.occupied) > 0 && b.occupied[len(b.occupied)-1] >= from
}

// reindex rebuilds the occupied index from the slots.
func (b *Buffer) reindex() {
	b.occupied = b.occupied[:0]
	for i, s := range b.slots {
		if s.ok {
			b.occupied = append(b.occupied, i)
		}
	}
}
