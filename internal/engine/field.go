package engine

import (
	"fmt"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dshills/maskfield/internal/engine/buffer"
	"github.com/dshills/maskfield/internal/engine/cursor"
	"github.com/dshills/maskfield/internal/input/key"
	"github.com/dshills/maskfield/internal/input/mode"
	"github.com/dshills/maskfield/internal/mask"
)

// Field is a single masked input field.
//
// All methods must be called from the goroutine that delivers host events.
type Field struct {
	id   uuid.UUID
	name string

	tmpl   *mask.Template
	buf    *buffer.Buffer
	mapper *cursor.Mapper
	cur    cursor.State
	modes  *mode.Manager

	opts       Options
	toggle     key.Event
	validators []Validator

	host      Host
	sched     Scheduler
	logger    *zap.Logger
	observers []Observer

	focused bool
	lastErr error
}

// New creates a field for the given mask template.
//
// It fails with a *mask.ConfigurationError when the mask does not compile,
// the blank rune is alphanumeric or the toggle key spec does not parse.
func New(source string, opts ...Option) (*Field, error) {
	tmpl, err := mask.Compile(source)
	if err != nil {
		return nil, err
	}

	f := &Field{
		id:     uuid.New(),
		tmpl:   tmpl,
		buf:    buffer.New(tmpl.SlotCount()),
		opts:   DefaultOptions(),
		host:   NewMemoryHost(),
		sched:  Immediate,
		logger: zap.NewNop(),
	}
	f.mapper = cursor.NewMapper(tmpl, f.buf)

	for _, opt := range opts {
		opt(f)
	}

	if f.opts.Blank == 0 {
		f.opts.Blank = DefaultBlank
	}
	if mask.AcceptsAny(f.opts.Blank) || !unicode.IsPrint(f.opts.Blank) {
		return nil, &mask.ConfigurationError{Mask: source, Err: ErrInvalidBlank}
	}
	if f.opts.ToggleKey == "" {
		f.opts.ToggleKey = DefaultToggleKey
	}
	f.toggle, err = key.Parse(f.opts.ToggleKey)
	if err != nil {
		return nil, &mask.ConfigurationError{
			Mask: source,
			Err:  fmt.Errorf("%w %q: %w", ErrInvalidToggleKey, f.opts.ToggleKey, err),
		}
	}

	f.logger = f.logger.With(zap.String("field", f.label()), zap.String("mask", source))
	f.modes = mode.ForMask(tmpl.IsComplex())
	f.modes.OnChange(f.onModeChange)

	f.cur.MoveTo(f.mapper.First())
	f.refresh()
	return f, nil
}

// ID returns the unique identifier of this field.
func (f *Field) ID() uuid.UUID {
	return f.id
}

// Name returns the field name, or "" if none was set.
func (f *Field) Name() string {
	return f.name
}

// Template returns the compiled mask.
func (f *Field) Template() *mask.Template {
	return f.tmpl
}

// Options returns the behavioral settings.
func (f *Field) Options() Options {
	return f.opts
}

// Host returns the host the field renders into.
func (f *Field) Host() Host {
	return f.host
}

// Mode returns the current edit mode.
func (f *Field) Mode() mode.Mode {
	return f.modes.Current()
}

// CanToggleMode reports whether the edit mode may change. Fields with
// complex masks are locked in Overwrite mode.
func (f *Field) CanToggleMode() bool {
	return f.modes.CanToggle()
}

// ToggleMode switches between Insert and Overwrite.
// Returns false if the mask is complex.
func (f *Field) ToggleMode() bool {
	if !f.modes.Toggle() {
		return false
	}
	f.placeCursor()
	return true
}

// Cursor returns the display position of the cursor.
func (f *Field) Cursor() int {
	return f.cur.Position()
}

// Selection returns the current selection.
func (f *Field) Selection() cursor.Selection {
	return f.cur.Selection()
}

// IsFocused reports whether the field has focus.
func (f *Field) IsFocused() bool {
	return f.focused
}

// IsEmpty reports whether no slot is filled.
func (f *Field) IsEmpty() bool {
	return f.buf.IsEmpty()
}

// IsComplete reports whether every slot is filled.
func (f *Field) IsComplete() bool {
	return f.buf.IsFull()
}

// LastError returns the result of the most recent validation.
func (f *Field) LastError() error {
	return f.lastErr
}

// Reset clears the value and the last validation error.
func (f *Field) Reset() {
	f.buf.Reset()
	f.lastErr = nil
	f.cur.MoveTo(f.mapper.First())
	f.refresh()
}

// refresh rewrites the host text with the display value and restores the
// cursor.
func (f *Field) refresh() {
	f.host.SetText(f.DisplayValue())
	f.placeCursor()
}

// placeCursor pushes the cursor to the host. In Overwrite mode the
// character at the cursor is selected, unless the cursor is past the last
// slot.
func (f *Field) placeCursor() {
	pos := f.cur.Position()
	if f.modes.Highlight() && pos < f.mapper.End() {
		f.cur.Highlight(pos)
	} else {
		f.cur.MoveTo(pos)
	}
	sel := f.cur.Selection()
	f.host.SetSelection(sel.Start(), sel.End())
}

// syncSelection adopts the host selection, which may have changed since the
// last render (select-all, a host-side click).
func (f *Field) syncSelection() {
	start, end := f.host.Selection()
	sel := cursor.NewSelection(start, end).Clamp(f.tmpl.Len())
	f.cur.Select(sel.Start(), sel.End())
}

func (f *Field) fullySelected() bool {
	return f.cur.IsFullSelection(f.tmpl.Len())
}

func (f *Field) onModeChange(from, to mode.Mode) {
	f.logger.Debug("mode changed",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
	)
	f.emit(Event{Kind: EventModeChanged})
}

func (f *Field) emit(e Event) {
	if len(f.observers) == 0 {
		return
	}
	e.FieldID = f.id
	e.Field = f.name
	e.Mode = f.modes.Current()
	for _, o := range f.observers {
		o.Observe(e)
	}
}

func (f *Field) label() string {
	if f.name != "" {
		return f.name
	}
	return f.id.String()
}
