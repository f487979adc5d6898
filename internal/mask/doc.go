// Package mask compiles input mask templates into the slot layout used by the
// masked field engine.
//
// A mask is a string of literal characters and placeholder markers:
//
//	#  a digit (0-9)
//	A  a letter (A-Z, a-z)
//	*  a digit or a letter
//
// Every placeholder is a slot. Compile records the display position of each
// slot and whether the mask mixes placeholder classes:
//
//	t, err := mask.Compile("(###) ###-####")
//	t.Slots()     // [1 2 3 6 7 8 10 11 12 13]
//	t.IsComplex() // false
//
// A Template is immutable and safe to share between goroutines.
package mask
