package mode

import "fmt"

// Mode is an edit mode.
type Mode uint8

const (
	// Insert shifts later characters right on typing.
	Insert Mode = iota

	// Overwrite replaces the character at the cursor and highlights it.
	Overwrite
)

// Initial returns the mode a field starts in: Insert for simple masks,
// Overwrite for complex ones.
func Initial(complex bool) Mode {
	if complex {
		return Overwrite
	}
	return Insert
}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Insert:
		return "insert"
	case Overwrite:
		return "overwrite"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// DisplayName returns a short label for status lines.
func (m Mode) DisplayName() string {
	switch m {
	case Insert:
		return "INS"
	case Overwrite:
		return "OVR"
	default:
		return "?"
	}
}

// Highlight reports whether the character at the cursor is selected.
func (m Mode) Highlight() bool {
	return m == Overwrite
}

// CursorStyle returns the cursor style for this mode.
func (m Mode) CursorStyle() CursorStyle {
	if m == Insert {
		return CursorBar
	}
	return CursorBlock
}

// Toggled returns the other mode.
func (m Mode) Toggled() Mode {
	if m == Insert {
		return Overwrite
	}
	return Insert
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (overwrite).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert).
	CursorBar

	// CursorUnderline is an underline cursor.
	CursorUnderline

	// CursorHidden hides the cursor.
	CursorHidden
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorUnderline:
		return "underline"
	case CursorHidden:
		return "hidden"
	default:
		return "unknown"
	}
}
