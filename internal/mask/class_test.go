package mask

import "testing"

func TestClassAccepts(t *testing.T) {
	tests := []struct {
		class Class
		r     rune
		want  bool
	}{
		{ClassDigit, '0', true},
		{ClassDigit, '9', true},
		{ClassDigit, 'a', false},
		{ClassDigit, '-', false},
		{ClassLetter, 'a', true},
		{ClassLetter, 'Z', true},
		{ClassLetter, '5', false},
		{ClassLetter, 'é', false},
		{ClassAlphanumeric, 'q', true},
		{ClassAlphanumeric, '7', true},
		{ClassAlphanumeric, ' ', false},
		{ClassNone, 'a', false},
	}

	for _, tt := range tests {
		if got := tt.class.Accepts(tt.r); got != tt.want {
			t.Errorf("%s.Accepts(%q) = %v, want %v", tt.class, tt.r, got, tt.want)
		}
	}
}

func TestClassMarkerRoundTrip(t *testing.T) {
	for _, c := range []Class{ClassDigit, ClassLetter, ClassAlphanumeric} {
		if got := ClassOf(c.Marker()); got != c {
			t.Errorf("ClassOf(%q) = %v, want %v", c.Marker(), got, c)
		}
	}
	if ClassNone.Marker() != 0 {
		t.Errorf("ClassNone.Marker() = %q, want 0", ClassNone.Marker())
	}
	if ClassOf('-') != ClassNone {
		t.Error("ClassOf('-') should be ClassNone")
	}
}

func TestClassString(t *testing.T) {
	if ClassDigit.String() != "digit" {
		t.Errorf("ClassDigit.String() = %q", ClassDigit.String())
	}
	if Class(42).String() != "Class(42)" {
		t.Errorf("Class(42).String() = %q", Class(42).String())
	}
}
