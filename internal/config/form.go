package config

import (
	"fmt"

	"github.com/dshills/maskfield/internal/engine"
	"github.com/dshills/maskfield/internal/input/keymap"
	"github.com/dshills/maskfield/internal/renderer"
	"github.com/dshills/maskfield/internal/renderer/core"
)

// Form is a decoded form definition.
type Form struct {
	Title  string  `toml:"title"`
	Theme  Theme   `toml:"theme"`
	Fields []Field `toml:"field" validate:"required,min=1,unique=Name,dive"`

	// Keys rebinds form actions: action name to key specs.
	Keys map[string][]string `toml:"keys" validate:"omitempty,dive,keys,keyaction,endkeys,dive,keyspec"`
}

// Theme holds the base colors of the form, as "#rrggbb" strings.
type Theme struct {
	Foreground string `toml:"foreground" validate:"omitempty,hexcolor"`
	Background string `toml:"background" validate:"omitempty,hexcolor"`
	Accent     string `toml:"accent" validate:"omitempty,hexcolor"`
	Error      string `toml:"error" validate:"omitempty,hexcolor"`
}

// Field is one [[field]] table.
type Field struct {
	Name  string `toml:"name" validate:"required"`
	Label string `toml:"label"`
	Mask  string `toml:"mask" validate:"required"`

	// Value is assigned with SetValue when the field is built.
	Value string `toml:"value"`

	AllowPartial bool `toml:"allow_partial"`
	// AllowBlank is a pointer so that an absent key keeps the default (true).
	AllowBlank   *bool  `toml:"allow_blank"`
	AllowSetZero bool   `toml:"allow_set_zero"`
	Blank        string `toml:"blank" validate:"omitempty,blankrune"`
	ToggleKey    string `toml:"toggle_key" validate:"omitempty,keyspec"`

	// LuaValidator is Lua source defining validate(value, masked).
	LuaValidator string `toml:"lua_validator"`
}

// DefaultForm returns the form every document is decoded on top of.
func DefaultForm() Form {
	return Form{
		Title: "maskfield",
	}
}

// DisplayLabel returns the label, falling back to the name.
func (f Field) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// EngineOptions returns the engine settings of the field.
func (f Field) EngineOptions() engine.Options {
	opts := engine.DefaultOptions()
	opts.AllowPartial = f.AllowPartial
	opts.AllowSetZero = f.AllowSetZero
	if f.AllowBlank != nil {
		opts.AllowBlank = *f.AllowBlank
	}
	if f.Blank != "" {
		opts.Blank = []rune(f.Blank)[0]
	}
	if f.ToggleKey != "" {
		opts.ToggleKey = f.ToggleKey
	}
	return opts
}

// Palette resolves the theme colors over the default palette.
func (t Theme) Palette() (renderer.Palette, error) {
	p := renderer.DefaultPalette()
	for _, c := range []struct {
		name string
		hex  string
		dst  *core.Color
	}{
		{"foreground", t.Foreground, &p.Foreground},
		{"background", t.Background, &p.Background},
		{"accent", t.Accent, &p.Accent},
		{"error", t.Error, &p.Error},
	} {
		if c.hex == "" {
			continue
		}
		color, err := core.ColorFromHex(c.hex)
		if err != nil {
			return p, fmt.Errorf("theme.%s: %w", c.name, err)
		}
		*c.dst = color
	}
	return p, nil
}

// Field returns the field with the given name.
func (f *Form) Field(name string) (Field, bool) {
	for _, fld := range f.Fields {
		if fld.Name == name {
			return fld, true
		}
	}
	return Field{}, false
}

// Keymap returns the default bindings with the form's overrides applied.
func (f *Form) Keymap() (*keymap.Keymap, error) {
	km := keymap.Default()
	if err := km.Apply(f.Keys); err != nil {
		return nil, err
	}
	return km, nil
}
