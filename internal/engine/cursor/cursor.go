package cursor

// State is the cursor of one field: a display position plus the selection
// shown to the user. When highlighting, the selection covers exactly the
// character at the cursor.
type State struct {
	pos int
	sel Selection
}

// Position returns the display position of the cursor.
func (s *State) Position() int {
	return s.pos
}

// Selection returns the current selection.
func (s *State) Selection() Selection {
	return s.sel
}

// MoveTo collapses the selection to a cursor at pos.
func (s *State) MoveTo(pos int) {
	s.pos = pos
	s.sel = NewCursorSelection(pos)
}

// Highlight places the cursor at pos and selects the one character there.
func (s *State) Highlight(pos int) {
	s.pos = pos
	s.sel = NewSelection(pos, pos+1)
}

// Select sets an arbitrary selection; the cursor moves to its start.
func (s *State) Select(start, end int) {
	s.sel = NewSelection(start, end)
	s.pos = s.sel.Start()
}

// IsFullSelection reports whether the selection covers a text of the given
// length.
func (s *State) IsFullSelection(length int) bool {
	return s.sel.Covers(length)
}
