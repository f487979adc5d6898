package key

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", NewRuneEvent('a', ModNone)},
		{"A", NewRuneEvent('A', ModShift)},
		{"+", NewRuneEvent('+', ModNone)},
		{"Insert", NewSpecialEvent(KeyInsert, ModNone)},
		{"<Ins>", NewSpecialEvent(KeyInsert, ModNone)},
		{"<S-Ins>", NewSpecialEvent(KeyInsert, ModShift)},
		{"Alt+Insert", NewSpecialEvent(KeyInsert, ModAlt)},
		{"Ctrl+T", NewRuneEvent('t', ModCtrl)},
		{"<C-A-x>", NewRuneEvent('x', ModCtrl|ModAlt)},
		{"<Space>", NewRuneEvent(' ', ModNone)},
		{"<lt>", NewRuneEvent('<', ModNone)},
		{"<CR>", NewSpecialEvent(KeyEnter, ModNone)},
		{"Shift+Tab", NewSpecialEvent(KeyBacktab, ModNone)},
		{"<F2>", NewSpecialEvent(KeyF2, ModNone)},
		{"  <Del>  ", NewSpecialEvent(KeyDelete, ModNone)},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"<X-a>", ErrInvalidSpec},
		{"Hyper+a", ErrInvalidSpec},
		{"<C->", ErrInvalidSpec},
		{"banana", ErrInvalidSpec},
	}

	for _, tt := range tests {
		if _, err := Parse(tt.spec); !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse(\"\") did not panic")
		}
	}()
	MustParse("")
}

func TestNormalizeSpec(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"Insert", "<Ins>"},
		{"ctrl+t", "<C-t>"},
		{"<S-Ins>", "<S-Ins>"},
	}

	for _, tt := range tests {
		got, err := NormalizeSpec(tt.spec)
		if err != nil {
			t.Fatalf("NormalizeSpec(%q) error = %v", tt.spec, err)
		}
		if got != tt.want {
			t.Errorf("NormalizeSpec(%q) = %q, want %q", tt.spec, got, tt.want)
		}
	}
}
