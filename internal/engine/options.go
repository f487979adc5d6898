package engine

import (
	"go.uber.org/zap"
)

// Default configuration values.
const (
	DefaultBlank     = ' '
	DefaultToggleKey = "<Ins>"
)

// Options holds the behavioral settings of a Field.
type Options struct {
	// AllowPartial accepts values that fill only some slots.
	AllowPartial bool

	// AllowBlank accepts an empty value.
	AllowBlank bool

	// AllowSetZero makes SetValue("0") store "0" instead of clearing the
	// field.
	AllowSetZero bool

	// Blank is shown at unfilled slot positions.
	Blank rune

	// ToggleKey is the key spec that switches Insert and Overwrite mode.
	ToggleKey string
}

// DefaultOptions returns the settings a Field uses unless told otherwise.
func DefaultOptions() Options {
	return Options{
		AllowBlank: true,
		Blank:      DefaultBlank,
		ToggleKey:  DefaultToggleKey,
	}
}

// Option configures a Field during creation.
type Option func(*Field)

// WithOptions replaces all behavioral settings at once.
func WithOptions(o Options) Option {
	return func(f *Field) {
		f.opts = o
	}
}

// WithAllowPartial accepts incomplete values.
func WithAllowPartial(allow bool) Option {
	return func(f *Field) {
		f.opts.AllowPartial = allow
	}
}

// WithAllowBlank controls whether an empty value is valid.
func WithAllowBlank(allow bool) Option {
	return func(f *Field) {
		f.opts.AllowBlank = allow
	}
}

// WithAllowSetZero treats a literal "0" passed to SetValue as a real value.
func WithAllowSetZero(allow bool) Option {
	return func(f *Field) {
		f.opts.AllowSetZero = allow
	}
}

// WithBlank sets the rune shown for unfilled slots.
func WithBlank(r rune) Option {
	return func(f *Field) {
		f.opts.Blank = r
	}
}

// WithToggleKey sets the key spec that toggles the edit mode.
func WithToggleKey(spec string) Option {
	return func(f *Field) {
		f.opts.ToggleKey = spec
	}
}

// WithValidator appends a custom validator. Validators run after the
// built-in rules, in the order they were added.
func WithValidator(v Validator) Option {
	return func(f *Field) {
		if v != nil {
			f.validators = append(f.validators, v)
		}
	}
}

// WithName sets a human-readable field name used in logs and events.
func WithName(name string) Option {
	return func(f *Field) {
		f.name = name
	}
}

// WithHost sets the text input the field renders into.
// The default is a fresh MemoryHost.
func WithHost(h Host) Option {
	return func(f *Field) {
		if h != nil {
			f.host = h
		}
	}
}

// WithScheduler sets the scheduler used for deferred paste handling.
// The default runs tasks immediately.
func WithScheduler(s Scheduler) Option {
	return func(f *Field) {
		if s != nil {
			f.sched = s
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(f *Field) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithObserver registers an observer for field events.
func WithObserver(o Observer) Option {
	return func(f *Field) {
		if o != nil {
			f.observers = append(f.observers, o)
		}
	}
}
