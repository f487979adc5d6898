package engine

import "github.com/dshills/maskfield/internal/engine/cursor"

// SelectionProvider reads and writes the host's selection, in display
// positions. start == end is a plain cursor.
type SelectionProvider interface {
	Selection() (start, end int)
	SetSelection(start, end int)
}

// Host is the text input a Field renders into.
type Host interface {
	SelectionProvider

	// Text returns the text currently shown by the host.
	Text() string

	// SetText replaces the text shown by the host.
	SetText(text string)
}

// Scheduler runs a task after the current event handler has returned,
// on the goroutine that delivers events.
type Scheduler interface {
	Defer(task func())
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(task func())

// Defer calls f(task).
func (f SchedulerFunc) Defer(task func()) {
	f(task)
}

// Immediate runs deferred tasks synchronously.
var Immediate Scheduler = SchedulerFunc(func(task func()) { task() })

// MemoryHost is a Host that keeps its text and selection in memory.
// The terminal app renders from it; tests inspect it.
type MemoryHost struct {
	text []rune
	sel  cursor.Selection
}

// NewMemoryHost creates an empty host.
func NewMemoryHost() *MemoryHost {
	return &MemoryHost{}
}

// Text returns the stored text.
func (h *MemoryHost) Text() string {
	return string(h.text)
}

// SetText stores text and clamps the selection to it.
func (h *MemoryHost) SetText(text string) {
	h.text = []rune(text)
	h.sel = h.sel.Clamp(len(h.text))
}

// Selection returns the stored selection as an ordered range.
func (h *MemoryHost) Selection() (start, end int) {
	return h.sel.Start(), h.sel.End()
}

// SetSelection stores a selection clamped to the text.
func (h *MemoryHost) SetSelection(start, end int) {
	h.sel = cursor.NewSelection(start, end).Clamp(len(h.text))
}

// Len returns the text length in runes.
func (h *MemoryHost) Len() int {
	return len(h.text)
}
