package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/maskfield/internal/mask"
)

// Load reads, validates and checks the form file at path.
func Load(path string) (*Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes a form document. source names the document in errors.
//
// Errors are a *ParseError for malformed TOML or unknown keys,
// ValidationErrors for invalid settings, and a *FieldError wrapping a
// *mask.ConfigurationError for masks that do not compile.
func Parse(source string, data []byte) (*Form, error) {
	form := DefaultForm()

	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&form); err != nil {
		return nil, parseError(source, err)
	}

	if err := Validate(&form); err != nil {
		return nil, err
	}

	for _, f := range form.Fields {
		if _, err := mask.Compile(f.Mask); err != nil {
			return nil, &FieldError{Field: f.Name, Err: err}
		}
	}

	return &form, nil
}

func parseError(source string, err error) error {
	pe := &ParseError{Path: source, Message: err.Error(), Err: err}

	var decErr *toml.DecodeError
	var strictErr *toml.StrictMissingError
	switch {
	case errors.As(err, &decErr):
		pe.Line, pe.Column = decErr.Position()
	case errors.As(err, &strictErr) && len(strictErr.Errors) > 0:
		first := strictErr.Errors[0]
		pe.Line, pe.Column = first.Position()
		pe.Message = fmt.Sprintf("unknown key %q", strings.Join(first.Key(), "."))
	}
	return pe
}
