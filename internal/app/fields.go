package app

import (
	"go.uber.org/zap"

	"github.com/dshills/maskfield/internal/config"
	"github.com/dshills/maskfield/internal/engine"
	"github.com/dshills/maskfield/internal/plugin/lua"
)

// formField is one field of the form together with the host it renders
// into.
type formField struct {
	spec      config.Field
	field     *engine.Field
	host      *engine.MemoryHost
	validator *lua.Validator
}

// buildFields creates a field for every entry of form. On failure every
// field built so far is closed.
func (a *App) buildFields(form *config.Form) ([]*formField, error) {
	fields := make([]*formField, 0, len(form.Fields))
	for _, spec := range form.Fields {
		ff, err := a.buildField(spec)
		if err != nil {
			closeFields(fields)
			return nil, err
		}
		fields = append(fields, ff)
	}
	return fields, nil
}

func (a *App) buildField(spec config.Field) (*formField, error) {
	ff := &formField{
		spec: spec,
		host: engine.NewMemoryHost(),
	}

	opts := []engine.Option{
		engine.WithOptions(spec.EngineOptions()),
		engine.WithName(spec.Name),
		engine.WithHost(ff.host),
		engine.WithScheduler(a.sched),
		engine.WithLogger(a.logger),
	}
	if a.metrics != nil {
		opts = append(opts, engine.WithObserver(a.metrics))
	}
	if spec.LuaValidator != "" {
		v, err := lua.NewValidator(spec.Name, spec.LuaValidator)
		if err != nil {
			return nil, &ComponentError{Component: "field " + spec.Name, Action: "load validator", Err: err}
		}
		ff.validator = v
		opts = append(opts, engine.WithValidator(v))
	}

	f, err := engine.New(spec.Mask, opts...)
	if err != nil {
		ff.close()
		return nil, &ComponentError{Component: "field " + spec.Name, Err: err}
	}
	ff.field = f

	if spec.Value != "" {
		f.SetValue(spec.Value)
	}
	a.logger.Debug("field built",
		zap.String("field", spec.Name),
		zap.Stringer("id", f.ID()),
		zap.Bool("complex", f.Template().IsComplex()),
	)
	return ff, nil
}

// sameShape reports whether a value typed into old still means the same
// thing in ff.
func (ff *formField) sameShape(old *formField) bool {
	return ff.spec.Name == old.spec.Name && ff.spec.Mask == old.spec.Mask
}

func (ff *formField) close() {
	if ff.validator != nil {
		_ = ff.validator.Close()
	}
}

func closeFields(fields []*formField) {
	for _, ff := range fields {
		ff.close()
	}
}
