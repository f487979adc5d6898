package app

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ExportJSON returns the form as a JSON document:
//
//	{"title": "...", "fields": {"<name>": {"value": "...", "masked": "...", "complete": true}}}
func (a *App) ExportJSON() ([]byte, error) {
	doc := []byte(`{}`)
	doc, err := sjson.SetBytes(doc, "title", a.form.Title)
	if err != nil {
		return nil, err
	}
	for _, ff := range a.fields {
		base := "fields." + escapePath(ff.spec.Name)
		for _, kv := range []struct {
			key   string
			value any
		}{
			{"value", ff.field.Value()},
			{"masked", ff.field.MaskValue()},
			{"complete", ff.field.IsComplete()},
		} {
			doc, err = sjson.SetBytes(doc, base+"."+kv.key, kv.value)
			if err != nil {
				return nil, fmt.Errorf("export %s: %w", ff.spec.Name, err)
			}
		}
	}
	return doc, nil
}

// ImportJSON assigns values from a document in the ExportJSON layout. A
// field's "value" wins over its "masked" value; fields the document does
// not mention are left alone. It returns the number of fields assigned.
func (a *App) ImportJSON(data []byte) (int, error) {
	if !gjson.ValidBytes(data) {
		return 0, ErrInvalidJSON
	}
	n := 0
	for _, ff := range a.fields {
		entry := gjson.GetBytes(data, "fields."+escapePath(ff.spec.Name))
		if !entry.Exists() {
			continue
		}
		var raw gjson.Result
		switch {
		case entry.Type == gjson.String:
			raw = entry
		case entry.Get("value").Exists():
			raw = entry.Get("value")
		case entry.Get("masked").Exists():
			raw = entry.Get("masked")
		default:
			continue
		}
		ff.field.SetValue(raw.String())
		n++
	}
	return n, nil
}

// escapePath quotes the characters gjson and sjson treat as path syntax.
func escapePath(name string) string {
	var b strings.Builder
	for _, r := range name {
		if strings.ContainsRune(`.*?|#@\!=<>%:`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
