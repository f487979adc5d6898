package main

import (
	"bufio"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/dshills/maskfield/internal/config"
	"github.com/dshills/maskfield/internal/engine"
	"github.com/dshills/maskfield/internal/plugin/lua"
)

const defaultFieldName = "value"

// formatter formats raw values through a single field.
type formatter struct {
	field     *engine.Field
	validator *lua.Validator
}

func newFormatter(spec config.Field, logger *zap.Logger) (*formatter, error) {
	fm := &formatter{}
	opts := []engine.Option{
		engine.WithOptions(spec.EngineOptions()),
		engine.WithName(spec.Name),
		engine.WithLogger(logger),
	}
	if spec.LuaValidator != "" {
		v, err := lua.NewValidator(spec.Name, spec.LuaValidator)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", spec.Name, err)
		}
		fm.validator = v
		opts = append(opts, engine.WithValidator(v))
	}

	f, err := engine.New(spec.Mask, opts...)
	if err != nil {
		fm.Close()
		return nil, fmt.Errorf("field %s: %w", spec.Name, err)
	}
	fm.field = f
	return fm, nil
}

// Format returns "display<TAB>value<TAB>error" for raw.
func (fm *formatter) Format(raw string) string {
	fm.field.SetValue(raw)
	msg := ""
	if err := fm.field.Validate(); err != nil {
		msg = err.Error()
	}
	return fmt.Sprintf("%s\t%s\t%s", fm.field.DisplayValue(), fm.field.Value(), msg)
}

func (fm *formatter) Close() {
	if fm.validator != nil {
		_ = fm.validator.Close()
	}
}

// batchField picks the named field of form, or its first field.
func batchField(form *config.Form, name string) (config.Field, error) {
	if name == "" {
		return form.Fields[0], nil
	}
	spec, ok := form.Field(name)
	if !ok {
		return config.Field{}, fmt.Errorf("no field %q", name)
	}
	return spec, nil
}

// runBatch formats every argument, or every line of in when there are no
// arguments.
func runBatch(spec config.Field, args []string, in io.Reader, out io.Writer, logger *zap.Logger) error {
	fm, err := newFormatter(spec, logger)
	if err != nil {
		return err
	}
	defer fm.Close()

	w := bufio.NewWriter(out)
	defer w.Flush()

	if len(args) > 0 {
		for _, raw := range args {
			if _, err := fmt.Fprintln(w, fm.Format(raw)); err != nil {
				return err
			}
		}
		return nil
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if _, err := fmt.Fprintln(w, fm.Format(sc.Text())); err != nil {
			return err
		}
	}
	return sc.Err()
}
