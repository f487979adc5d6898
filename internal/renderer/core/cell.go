package core

import (
	"github.com/rivo/uniseg"
)

// Cell represents a single terminal cell.
type Cell struct {
	// Rune is the character to display.
	Rune rune

	// Width is the display width of this cell.
	Width int

	// Style is the visual style for this cell.
	Style Style
}

// EmptyCell returns an empty cell with default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1, Style: DefaultStyle()}
}

// NewStyledCell creates a cell with the given rune and style.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: style}
}

// Equals returns true if two cells are identical.
func (c Cell) Equals(other Cell) bool {
	return c.Rune == other.Rune &&
		c.Width == other.Width &&
		c.Style.Equals(other.Style)
}

// RuneWidth returns the number of columns r occupies.
func RuneWidth(r rune) int {
	if r < ' ' || r == 0x7F {
		return 0
	}
	return uniseg.StringWidth(string(r))
}

// StringWidth returns the number of columns s occupies.
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}

// Truncate cuts s to at most width columns without splitting a grapheme
// cluster.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	used := 0
	state := -1
	rest := s
	for rest != "" {
		var w int
		_, next, w, newState := uniseg.FirstGraphemeClusterInString(rest, state)
		if used+w > width {
			return s[:len(s)-len(rest)]
		}
		used += w
		rest, state = next, newState
	}
	return s
}
