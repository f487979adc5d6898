package app

import (
	"go.uber.org/zap"

	"github.com/dshills/maskfield/internal/config"
	"github.com/dshills/maskfield/internal/input/key"
	"github.com/dshills/maskfield/internal/input/keymap"
	"github.com/dshills/maskfield/internal/renderer/backend"
)

// HandleEvent processes one backend event. It returns ErrQuit when the
// user asks to leave.
func (a *App) HandleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return a.handleKey(ev.Key)
	case backend.EventMouse:
		a.handleMouse(ev)
	case backend.EventPaste:
		if ff := a.current(); ff != nil {
			ff.field.Paste(ev.Text)
		}
	case backend.EventInterrupt:
		if ev.Task != nil {
			ev.Task()
		}
	case backend.EventFocus:
		a.logger.Debug("terminal focus", zap.Bool("focused", ev.Focused))
	}
	return nil
}

func (a *App) handleKey(ev key.Event) error {
	if ff := a.current(); ff != nil {
		res := ff.field.HandleKey(ev)
		if res.Consumed {
			if res.Changed {
				a.message = ""
			}
			return nil
		}
	}

	action, ok := a.keys.Lookup(ev)
	if !ok {
		return nil
	}
	switch action {
	case keymap.ActionQuit:
		return ErrQuit
	case keymap.ActionNextField:
		a.moveFocus(1)
	case keymap.ActionPrevField:
		a.moveFocus(-1)
	case keymap.ActionSubmit:
		return a.submit()
	case keymap.ActionSelectAll:
		if ff := a.current(); ff != nil {
			ff.field.SelectAll()
		}
	case keymap.ActionClear:
		if ff := a.current(); ff != nil {
			ff.field.Reset()
		}
	}
	return nil
}

func (a *App) handleMouse(ev backend.Event) {
	if ev.Button != backend.MouseLeft && ev.Button != backend.MouseRight {
		return
	}
	i, pos, ok := a.renderer.Layout().HitTest(ev.X, ev.Y)
	if !ok || i >= len(a.fields) {
		return
	}
	a.setFocus(i)
	f := a.fields[i].field
	if ev.Button == backend.MouseRight {
		f.RightClick(pos)
		return
	}
	f.Click(pos)
}

func (a *App) current() *formField {
	if a.focus < 0 || a.focus >= len(a.fields) {
		return nil
	}
	return a.fields[a.focus]
}

func (a *App) moveFocus(delta int) {
	n := len(a.fields)
	if n == 0 {
		return
	}
	next := ((a.focus+delta)%n + n) % n
	if next == a.focus {
		return
	}
	a.fields[next].host.SetSelection(0, 0)
	a.setFocus(next)
}

// setFocus blurs the focused field, which validates it, and focuses field i.
func (a *App) setFocus(i int) {
	if i == a.focus {
		return
	}
	if ff := a.current(); ff != nil {
		if err := ff.field.Blur(); err != nil {
			a.logger.Debug("field invalid on blur",
				zap.String("field", ff.spec.Name),
				zap.Error(err),
			)
		}
	}
	a.focus = i
	a.fields[i].field.Focus()
}

// submit validates every field. When all pass, the form is written to the
// output as JSON; otherwise focus moves to the first invalid field.
func (a *App) submit() error {
	invalid := 0
	first := -1
	for i, ff := range a.fields {
		if err := ff.field.Validate(); err != nil {
			invalid++
			if first < 0 {
				first = i
			}
		}
	}
	if invalid > 0 {
		a.setFocus(first)
		a.setMessage("%d invalid field(s)", invalid)
		return nil
	}

	data, err := a.ExportJSON()
	if err != nil {
		a.setMessage("export failed: %v", err)
		return nil
	}
	if _, err := a.opts.Output.Write(append(data, '\n')); err != nil {
		a.logger.Error("submit write failed", zap.Error(err))
		a.setMessage("write failed: %v", err)
		return nil
	}
	a.logger.Info("form submitted", zap.Int("fields", len(a.fields)))
	a.message = "submitted"
	if a.opts.QuitOnSubmit {
		return ErrQuit
	}
	return nil
}

// onConfigChange runs on the watcher goroutine. The reload itself is
// posted to the event loop.
func (a *App) onConfigChange(ev config.Event) {
	a.backend.PostEvent(backend.Event{
		Type: backend.EventInterrupt,
		Task: func() { a.reloadFile(ev) },
	})
}

func (a *App) reloadFile(ev config.Event) {
	if ev.Op == config.OpRemove || ev.Op == config.OpRename {
		a.setMessage("config %s", ev.Op)
		return
	}
	form, err := config.Load(a.opts.ConfigPath)
	if err != nil {
		a.logger.Warn("config reload failed", zap.Error(err))
		a.setMessage("reload failed: %v", err)
		return
	}
	if err := a.Reload(form); err != nil {
		a.setMessage("reload failed: %v", err)
		return
	}
	a.message = "reloaded"
}

// Reload replaces the form. Fields keeping their name and mask keep their
// value; focus stays on the same index when it still exists.
func (a *App) Reload(form *config.Form) error {
	theme, err := themeFor(form)
	if err != nil {
		return &ComponentError{Component: "theme", Err: err}
	}
	keys, err := form.Keymap()
	if err != nil {
		return &ComponentError{Component: "keymap", Err: err}
	}
	fields, err := a.buildFields(form)
	if err != nil {
		a.logger.Warn("config reload rejected", zap.Error(err))
		return err
	}

	carried := 0
	for _, ff := range fields {
		for _, old := range a.fields {
			if ff.sameShape(old) {
				ff.field.SetValue(old.field.DisplayValue())
				carried++
				break
			}
		}
	}

	closeFields(a.fields)
	a.form = form
	a.fields = fields
	a.keys = keys
	a.renderer.SetTheme(theme)

	focus := min(max(a.focus, 0), len(fields)-1)
	a.focus = -1
	if focus >= 0 {
		a.setFocus(focus)
	}
	a.logger.Info("form reloaded",
		zap.Int("fields", len(fields)),
		zap.Int("carried", carried),
	)
	return nil
}
