package config

import (
	"errors"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/dshills/maskfield/internal/input/key"
	"github.com/dshills/maskfield/internal/input/keymap"
	"github.com/dshills/maskfield/internal/mask"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(tomlName)
	// Registration only fails for empty tags or nil functions.
	_ = validate.RegisterValidation("keyspec", isKeySpec)
	_ = validate.RegisterValidation("blankrune", isBlankRune)
	_ = validate.RegisterValidation("keyaction", isKeyAction)
}

var tagCodes = map[string]string{
	"required":  "required",
	"min":       "too_short",
	"unique":    "duplicate",
	"hexcolor":  "invalid_color",
	"keyspec":   "invalid_key",
	"blankrune": "invalid_blank",
	"keyaction": "invalid_action",
}

// Validate checks a decoded form. It returns ValidationErrors, which
// matches ErrValidationFailed, or nil.
func Validate(f *Form) error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, &ValidationError{
			Path:  strings.TrimPrefix(fe.Namespace(), "Form."),
			Code:  tagCode(fe.Tag()),
			Value: fe.Value(),
		})
	}
	return out
}

func tagCode(tag string) string {
	if code, ok := tagCodes[tag]; ok {
		return code
	}
	return "invalid"
}

func tomlName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

func isKeySpec(fl validator.FieldLevel) bool {
	_, err := key.Parse(fl.Field().String())
	return err == nil
}

func isKeyAction(fl validator.FieldLevel) bool {
	_, err := keymap.ParseAction(fl.Field().String())
	return err == nil
}

// isBlankRune accepts a single printable rune that no placeholder class
// accepts, the same rule engine.New enforces.
func isBlankRune(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if utf8.RuneCountInString(s) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsPrint(r) && !mask.AcceptsAny(r)
}
