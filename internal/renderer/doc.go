// Package renderer draws a form of masked fields onto a backend.
//
// Drawing is a pure function of a Frame: the caller snapshots its fields
// into rows, and Draw paints the whole screen from that snapshot.
//
// Screen layout:
//
//	┌─────────────────────────────────────────┐
//	│ Title                                   │
//	│                                         │
//	│ Phone    (212) 555-1234                 │
//	│          ! must match mask format ...   │
//	│ SSN      ___-__-____                    │
//	│                                         │
//	│ INS  Phone                         1/2  │
//	└─────────────────────────────────────────┘
//
// Each display position of a field occupies one column. The Layout used
// by the last Draw maps mouse coordinates back to fields and positions.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.NewTheme(renderer.DefaultPalette()))
//	r.Draw(frame)
package renderer
