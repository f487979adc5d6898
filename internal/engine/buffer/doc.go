// Package buffer provides the sparse slot buffer behind a masked field.
//
// A Buffer has one slot per fillable mask position. Each slot is either
// empty or holds a single rune. The buffer keeps an index of occupied slots,
// rebuilt after every mutation, so callers can walk entered data without
// scanning empty slots:
//
//	buf := buffer.New(10)
//	buf.Set(0, '2')
//	buf.Set(3, '5')
//	buf.Occupied()      // [0 3]
//	buf.LogicalString() // "25"
//
// The buffer knows nothing about character classes or display positions;
// the engine validates input against the mask before writing.
//
// A Buffer is owned by a single field and is not safe for concurrent use.
package buffer
