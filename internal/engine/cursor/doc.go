// Package cursor provides cursor, selection and position mapping for a
// masked field.
//
// Positions are rune offsets into the rendered display string. Selection
// uses the anchor/head model: Anchor is where the selection started and
// Head is where typing occurs. When Anchor == Head the selection is just a
// cursor.
//
// Mapper translates display positions into slot positions of a compiled
// mask, taking the field's current buffer contents into account:
//
//	m := cursor.NewMapper(tmpl, buf)
//	m.Landing(0)   // snap onto the first slot at or after 0
//	m.Previous(p)  // last occupied slot before p
//	m.Next(p)      // next slot to move to from p
//
// Selection and State are plain values owned by one field; nothing in this
// package is safe for concurrent mutation.
package cursor
