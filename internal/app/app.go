// Package app runs a form of masked fields in a terminal.
//
// The App owns the backend, the fields and the focus. Every field is
// touched only from the goroutine running the event loop: deferred field
// work (paste reformatting) and config reloads reach it as interrupt events
// posted to the backend.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/maskfield/internal/config"
	"github.com/dshills/maskfield/internal/engine"
	"github.com/dshills/maskfield/internal/input/keymap"
	"github.com/dshills/maskfield/internal/metrics"
	"github.com/dshills/maskfield/internal/renderer"
	"github.com/dshills/maskfield/internal/renderer/backend"
)

// Options configures the application.
type Options struct {
	// Form is the form to show. Required.
	Form *config.Form

	// Backend is the terminal. Required.
	Backend backend.Backend

	// ConfigPath is the file Form was loaded from. With Watch set, changes
	// to it are reloaded while running.
	ConfigPath string
	Watch      bool

	// Output receives the JSON document of every successful submit.
	Output io.Writer

	// QuitOnSubmit ends Run after the first successful submit.
	QuitOnSubmit bool

	// Registry enables metrics. With MetricsAddr set, Run also serves it.
	Registry    *prometheus.Registry
	MetricsAddr string

	Logger *zap.Logger
}

// App is a running form.
type App struct {
	opts     Options
	backend  backend.Backend
	renderer *renderer.Renderer
	logger   *zap.Logger
	metrics  *metrics.Collector
	sched    engine.Scheduler
	keys     *keymap.Keymap

	form    *config.Form
	fields  []*formField
	focus   int
	message string

	running atomic.Bool
}

// New builds the form's fields. The backend is not touched until Run.
func New(opts Options) (*App, error) {
	if opts.Form == nil {
		return nil, ErrNoForm
	}
	if opts.Backend == nil {
		return nil, ErrNoBackend
	}
	if opts.Output == nil {
		opts.Output = io.Discard
	}

	a := &App{
		opts:    opts,
		backend: opts.Backend,
		logger:  opts.Logger,
		focus:   -1,
	}
	if a.logger == nil {
		a.logger = zap.NewNop()
	}
	a.sched = postScheduler{b: opts.Backend}

	if opts.Registry != nil {
		c, err := metrics.New(opts.Registry, metrics.DefaultNamespace)
		if err != nil {
			return nil, &ComponentError{Component: "metrics", Err: err}
		}
		a.metrics = c
	}

	theme, err := themeFor(opts.Form)
	if err != nil {
		return nil, &ComponentError{Component: "theme", Err: err}
	}
	a.renderer = renderer.New(opts.Backend, theme)

	if a.keys, err = opts.Form.Keymap(); err != nil {
		return nil, &ComponentError{Component: "keymap", Err: err}
	}

	fields, err := a.buildFields(opts.Form)
	if err != nil {
		return nil, err
	}
	a.form = opts.Form
	a.fields = fields
	if len(fields) > 0 {
		a.setFocus(0)
	}
	return a, nil
}

func themeFor(form *config.Form) (renderer.Theme, error) {
	p, err := form.Theme.Palette()
	if err != nil {
		return renderer.Theme{}, err
	}
	return renderer.NewTheme(p), nil
}

// Run initializes the backend and processes events until the user quits
// or ctx is done. The config watcher and the metrics server, when enabled,
// run alongside the event loop and stop with it.
func (a *App) Run(ctx context.Context) error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	var w *config.Watcher
	if a.opts.Watch && a.opts.ConfigPath != "" {
		var err error
		w, err = config.NewWatcher(a.opts.ConfigPath, a.onConfigChange, config.WithLogger(a.logger))
		if err != nil {
			return &ComponentError{Component: "watcher", Err: err}
		}
		defer w.Close()
	}

	if err := a.backend.Init(); err != nil {
		return &ComponentError{Component: "backend", Action: "init", Err: err}
	}
	defer a.backend.Shutdown()
	defer func() { closeFields(a.fields) }()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.loop()
	})
	g.Go(func() error {
		<-gctx.Done()
		a.backend.PostEvent(backend.Event{Type: backend.EventClosed})
		return nil
	})

	if w != nil {
		g.Go(func() error {
			return w.Run(gctx)
		})
	}

	if a.opts.Registry != nil && a.opts.MetricsAddr != "" {
		h := metrics.Handler(a.opts.Registry)
		g.Go(func() error {
			if err := metrics.ListenAndServe(gctx, a.opts.MetricsAddr, h, a.logger); err != nil {
				return &ComponentError{Component: "metrics", Action: "serve", Err: err}
			}
			return nil
		})
	}

	err := g.Wait()
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

// loop returns ErrQuit when the user quits and nil when the backend
// closes.
func (a *App) loop() error {
	a.draw()
	for {
		ev := a.backend.PollEvent()
		if ev.Type == backend.EventClosed {
			return nil
		}

		start := time.Now()
		err := a.dispatch(ev)
		if a.metrics != nil {
			a.metrics.ObserveInput(time.Since(start))
		}
		if err != nil {
			return err
		}
		a.draw()
	}
}

// dispatch handles one event. A panic in a handler is logged and the event
// dropped.
func (a *App) dispatch(ev backend.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			perr := &RecoveredPanicError{Value: r, Stack: string(debug.Stack())}
			a.logger.Error("event handler panic",
				zap.Error(perr),
				zap.String("stack", perr.Stack),
			)
			a.message = "internal error"
			err = nil
		}
	}()
	return a.HandleEvent(ev)
}

func (a *App) draw() {
	start := time.Now()
	a.renderer.Draw(a.frame())
	if a.metrics != nil {
		a.metrics.ObserveRender(time.Since(start))
	}
}

func (a *App) frame() renderer.Frame {
	rows := make([]renderer.Row, len(a.fields))
	for i, ff := range a.fields {
		start, end := ff.host.Selection()
		rows[i] = renderer.Row{
			Label:    ff.spec.DisplayLabel(),
			Text:     ff.host.Text(),
			SelStart: start,
			SelEnd:   end,
			Mode:     ff.field.Mode(),
			Err:      ff.field.LastError(),
		}
	}
	return renderer.Frame{
		Title:   a.form.Title,
		Rows:    rows,
		Focus:   a.focus,
		Message: a.message,
	}
}

// Field returns the field with the given name.
func (a *App) Field(name string) (*engine.Field, bool) {
	for _, ff := range a.fields {
		if ff.spec.Name == name {
			return ff.field, true
		}
	}
	return nil, false
}

// Focused returns the index of the focused field, or -1.
func (a *App) Focused() int {
	return a.focus
}

// Message returns the status line text.
func (a *App) Message() string {
	return a.message
}

func (a *App) setMessage(format string, args ...any) {
	a.message = fmt.Sprintf(format, args...)
}

// postScheduler runs deferred field work on the event loop by posting it
// as an interrupt event.
type postScheduler struct {
	b backend.Backend
}

func (s postScheduler) Defer(task func()) {
	s.b.PostEvent(backend.Event{Type: backend.EventInterrupt, Task: task})
}
