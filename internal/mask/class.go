package mask

import "fmt"

// Placeholder markers recognized in a mask template.
const (
	MarkerDigit        = '#'
	MarkerLetter       = 'A'
	MarkerAlphanumeric = '*'
)

// Class is the character class of a slot.
type Class uint8

const (
	// ClassNone marks a literal (non-fillable) template character.
	ClassNone Class = iota

	// ClassDigit accepts 0-9.
	ClassDigit

	// ClassLetter accepts A-Z and a-z.
	ClassLetter

	// ClassAlphanumeric accepts anything ClassDigit or ClassLetter accepts.
	ClassAlphanumeric
)

// ClassOf returns the class a template character declares.
// Literal characters return ClassNone.
func ClassOf(r rune) Class {
	switch r {
	case MarkerDigit:
		return ClassDigit
	case MarkerLetter:
		return ClassLetter
	case MarkerAlphanumeric:
		return ClassAlphanumeric
	default:
		return ClassNone
	}
}

// Marker returns the template character for the class, or 0 for ClassNone.
func (c Class) Marker() rune {
	switch c {
	case ClassDigit:
		return MarkerDigit
	case ClassLetter:
		return MarkerLetter
	case ClassAlphanumeric:
		return MarkerAlphanumeric
	default:
		return 0
	}
}

// Accepts reports whether r may be entered into a slot of this class.
func (c Class) Accepts(r rune) bool {
	switch c {
	case ClassDigit:
		return isDigit(r)
	case ClassLetter:
		return isLetter(r)
	case ClassAlphanumeric:
		return isDigit(r) || isLetter(r)
	default:
		return false
	}
}

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassNone:
		return "literal"
	case ClassDigit:
		return "digit"
	case ClassLetter:
		return "letter"
	case ClassAlphanumeric:
		return "alphanumeric"
	default:
		return fmt.Sprintf("Class(%d)", c)
	}
}

// IsFillable returns true for every class except ClassNone.
func (c Class) IsFillable() bool {
	return c != ClassNone
}

// AcceptsAny reports whether any placeholder class accepts r.
func AcceptsAny(r rune) bool {
	return ClassAlphanumeric.Accepts(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
