package engine

import (
	"testing"
)

func TestSetValue(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		value   string
		display string
		cursor  int
	}{
		{"raw digits", "2125551234", "2125551234", "(212) 555-1234", 14},
		{"display string", "(212) 555-1234", "2125551234", "(212) 555-1234", 14},
		{"partial display string", "(212) 5  -    ", "2125", "(212) 5  -    ", 7},
		{"display string with gap", "(2 2)    -    ", "22", "(2 2)    -    ", 6},
		{"foreign separators", "212.555.1234", "2125551234", "(212) 555-1234", 14},
		{"extra runes dropped", "212-555-1234 ext 99", "2125551234", "(212) 555-1234", 14},
		{"too many digits", "12345678901234", "1234567890", "(123) 456-7890", 14},
		{"nothing usable", "abc", "", phoneEmpty, 1},
		{"empty", "", "", phoneEmpty, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newField(t, phoneMask)
			f.SetValue(tt.raw)

			if got := f.Value(); got != tt.value {
				t.Errorf("Value() = %q, want %q", got, tt.value)
			}
			if got := f.DisplayValue(); got != tt.display {
				t.Errorf("DisplayValue() = %q, want %q", got, tt.display)
			}
			if got := f.Host().Text(); got != tt.display {
				t.Errorf("host text = %q, want %q", got, tt.display)
			}
			if f.Cursor() != tt.cursor {
				t.Errorf("Cursor() = %d, want %d", f.Cursor(), tt.cursor)
			}
		})
	}
}

func TestSetValueComplexSkipsRejectedRunes(t *testing.T) {
	f := newField(t, "A#A #A#")
	f.SetValue("k1a2b3")
	if got := f.DisplayValue(); got != "k1a 2b3" {
		t.Errorf("DisplayValue() = %q", got)
	}

	f.SetValue("12ab")
	if got := f.Value(); got != "a" {
		t.Errorf("Value() = %q, want a", got)
	}
}

func TestSetZero(t *testing.T) {
	tests := []struct {
		name  string
		opts  []Option
		raw   string
		value string
	}{
		{"zero cleared", nil, "0", ""},
		{"zero allowed", []Option{WithAllowSetZero(true)}, "0", "0"},
		{"leading zero kept", nil, "01", "01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newField(t, "#####", tt.opts...)
			f.SetValue(tt.raw)
			if got := f.Value(); got != tt.value {
				t.Errorf("Value() = %q, want %q", got, tt.value)
			}
		})
	}
}

func TestBlurRereadsHostText(t *testing.T) {
	host := NewMemoryHost()
	f := newField(t, "#####", WithHost(host), WithAllowPartial(true))
	f.Focus()

	// A refresh from the host bypasses the zero rule.
	host.SetText("0")
	if err := f.Blur(); err != nil {
		t.Errorf("Blur() = %v", err)
	}
	if f.IsFocused() {
		t.Error("IsFocused() = true after Blur")
	}
	if got := f.Value(); got != "0" {
		t.Errorf("Value() = %q, want 0", got)
	}
	if got := host.Text(); got != "0    " {
		t.Errorf("host text = %q", got)
	}
}

func TestBlurValidates(t *testing.T) {
	f := newField(t, phoneMask)
	f.Focus()
	typeString(f, "555")

	err := f.Blur()
	ve, ok := err.(*ValidationError)
	if !ok || ve.Code != CodePartial {
		t.Fatalf("Blur() = %v, want a partial validation error", err)
	}

	f.Host().SetText("(212) 555-1234")
	if err := f.Blur(); err != nil {
		t.Errorf("Blur() = %v", err)
	}
	if f.Value() != "2125551234" {
		t.Errorf("Value() = %q", f.Value())
	}
}

func TestRoundTrip(t *testing.T) {
	masks := []struct {
		source string
		input  string
	}{
		{phoneMask, "2125551234"},
		{ssnMask, "123456789"},
		{"##/##/####", "12312024"},
		{"A#A #A#", "k1a2b3"},
		{"***-***", "ab12cd"},
	}

	for _, m := range masks {
		t.Run(m.source, func(t *testing.T) {
			f := newField(t, m.source)
			typeString(f, m.input)
			value := f.Value()

			f.SetValue(value)
			if got := f.Value(); got != value {
				t.Errorf("SetValue(Value()) = %q, want %q", got, value)
			}
			f.SetValue(f.DisplayValue())
			if got := f.Value(); got != value {
				t.Errorf("SetValue(DisplayValue()) = %q, want %q", got, value)
			}
		})
	}
}

func TestValueNeverContainsLiterals(t *testing.T) {
	f := newField(t, "(###) ###-####")
	inputs := []string{"(((", "2)1-2", "  55  ", "(212) 555-1234", "9-9-9-9"}

	for _, in := range inputs {
		f.Reset()
		typeString(f, in)
		for _, r := range f.Value() {
			if r < '0' || r > '9' {
				t.Errorf("typing %q: Value() = %q contains %q", in, f.Value(), r)
			}
		}
	}
}

func TestDisplayIdempotent(t *testing.T) {
	f := newField(t, "AA-##")
	typeString(f, "xy")
	first := f.DisplayValue()
	if second := f.DisplayValue(); second != first {
		t.Errorf("DisplayValue() changed without a mutation: %q then %q", first, second)
	}
	if f.MaskValue() != "xy-##" {
		t.Errorf("MaskValue() = %q", f.MaskValue())
	}
}

func TestMaskValue(t *testing.T) {
	f := newField(t, phoneMask)
	typeString(f, "212")
	if got := f.MaskValue(); got != "(212) ###-####" {
		t.Errorf("MaskValue() = %q", got)
	}
	if got := f.DisplayValue(); got != "(212)    -    " {
		t.Errorf("DisplayValue() = %q", got)
	}
}
