package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Operation represents the type of file operation.
type Operation int

const (
	// OpWrite indicates the file was modified.
	OpWrite Operation = iota

	// OpCreate indicates a new file was created.
	OpCreate

	// OpRemove indicates the file was deleted.
	OpRemove

	// OpRename indicates the file was renamed.
	OpRename
)

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case OpWrite:
		return "write"
	case OpCreate:
		return "create"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// Event represents a settled change to the watched file.
type Event struct {
	// Path is the absolute path to the changed file.
	Path string

	// Op is the coalesced operation.
	Op Operation

	// Time is when the last raw event arrived.
	Time time.Time
}

// Handler is called when a file change is detected.
type Handler func(event Event)

// Watcher reports changes to a single form file.
type Watcher struct {
	path     string
	fsw      *fsnotify.Watcher
	handler  Handler
	debounce time.Duration
	logger   *zap.Logger
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets how long the file must be quiet before the handler
// runs. Zero delivers every event immediately.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger for watch errors.
func WithLogger(l *zap.Logger) WatcherOption {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewWatcher starts watching path. handler runs on the goroutine that
// calls Run.
func NewWatcher(path string, handler Handler, opts ...WatcherOption) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     absPath,
		handler:  handler,
		debounce: 100 * time.Millisecond,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", absPath, err)
	}
	w.fsw = fsw

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run delivers events until ctx is done or the watcher is closed.
// It closes the watcher before returning.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending *Event
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case fsEvent, ok := <-w.fsw.Events:
			if !ok {
				return ErrWatcherClosed
			}
			ev, ok := w.convert(fsEvent)
			if !ok {
				continue
			}
			pending = coalesce(pending, ev)
			if w.debounce == 0 {
				w.deliver(pending)
				pending = nil
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return ErrWatcherClosed
			}
			w.logger.Warn("config watch error", zap.String("path", w.path), zap.Error(err))

		case <-fire:
			fire = nil
			if pending != nil {
				w.deliver(pending)
				pending = nil
			}
		}
	}
}

// Close stops the watcher; a running Run returns ErrWatcherClosed.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) deliver(ev *Event) {
	w.logger.Debug("config file changed",
		zap.String("path", ev.Path),
		zap.Stringer("op", ev.Op),
	)
	if w.handler != nil {
		w.handler(*ev)
	}
}

func (w *Watcher) convert(fsEvent fsnotify.Event) (Event, bool) {
	if filepath.Clean(fsEvent.Name) != w.path {
		return Event{}, false
	}

	ev := Event{Path: w.path, Time: time.Now()}
	switch {
	case fsEvent.Has(fsnotify.Remove):
		ev.Op = OpRemove
	case fsEvent.Has(fsnotify.Rename):
		ev.Op = OpRename
	case fsEvent.Has(fsnotify.Create):
		ev.Op = OpCreate
	case fsEvent.Has(fsnotify.Write):
		ev.Op = OpWrite
	default:
		return Event{}, false
	}
	return ev, true
}

// coalesce merges a new event into the pending one:
// removal wins, a creation is not downgraded by later writes.
func coalesce(pending *Event, ev Event) *Event {
	if pending == nil {
		return &ev
	}
	switch {
	case ev.Op == OpRemove:
		pending.Op = OpRemove
	case ev.Op == OpCreate:
		pending.Op = OpCreate
	case pending.Op == OpRemove || pending.Op == OpRename:
		pending.Op = ev.Op
	}
	pending.Time = ev.Time
	return pending
}
