package cursor

import "fmt"

// Selection represents a range of selected display positions.
// Selection is an immutable value type.
type Selection struct {
	Anchor int // Where selection started
	Head   int // Current cursor position (where typing occurs)
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head int) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// NewCursorSelection creates a selection representing just a cursor.
func NewCursorSelection(pos int) Selection {
	return Selection{Anchor: pos, Head: pos}
}

// IsEmpty returns true if the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Len returns the number of selected positions.
func (s Selection) Len() int {
	return s.End() - s.Start()
}

// Start returns the lower bound of the selection.
func (s Selection) Start() int {
	if s.Anchor <= s.Head {
		return s.Anchor
	}
	return s.Head
}

// End returns the upper bound of the selection (exclusive).
func (s Selection) End() int {
	if s.Anchor >= s.Head {
		return s.Anchor
	}
	return s.Head
}

// Contains returns true if pos is within [Start, End).
func (s Selection) Contains(pos int) bool {
	return pos >= s.Start() && pos < s.End()
}

// Covers reports whether the selection spans every position of a text of
// the given length. An empty text is never covered.
func (s Selection) Covers(length int) bool {
	return length > 0 && s.Start() <= 0 && s.End() >= length
}

// Clamp returns a selection clamped to [0, max].
func (s Selection) Clamp(max int) Selection {
	return Selection{Anchor: clamp(s.Anchor, max), Head: clamp(s.Head, max)}
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor(%d)", s.Head)
	}
	return fmt.Sprintf("Selection(%d->%d)", s.Anchor, s.Head)
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
