package key

import "testing"

func TestEventIsChar(t *testing.T) {
	tests := []struct {
		event Event
		want  bool
	}{
		{NewRuneEvent('a', ModNone), true},
		{NewRuneEvent('A', ModShift), true},
		{NewRuneEvent('5', ModNone), true},
		{NewRuneEvent('a', ModCtrl), false},
		{NewRuneEvent('\n', ModNone), false},
		{Event{Key: KeyRune}, false},
		{NewSpecialEvent(KeyInsert, ModNone), false},
	}

	for _, tt := range tests {
		if got := tt.event.IsChar(); got != tt.want {
			t.Errorf("%#v.IsChar() = %v, want %v", tt.event, got, tt.want)
		}
	}
}

func TestEventIsModified(t *testing.T) {
	tests := []struct {
		event Event
		want  bool
	}{
		{NewRuneEvent('A', ModShift), false},
		{NewRuneEvent('a', ModAlt), true},
		{NewSpecialEvent(KeyInsert, ModNone), false},
		{NewSpecialEvent(KeyInsert, ModShift), true},
	}

	for _, tt := range tests {
		if got := tt.event.IsModified(); got != tt.want {
			t.Errorf("%#v.IsModified() = %v, want %v", tt.event, got, tt.want)
		}
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent('A', ModShift), "A"},
		{NewRuneEvent(' ', ModNone), "<Space>"},
		{NewRuneEvent('t', ModCtrl), "<C-t>"},
		{NewSpecialEvent(KeyInsert, ModNone), "<Ins>"},
		{NewSpecialEvent(KeyInsert, ModShift), "<S-Ins>"},
		{NewSpecialEvent(KeyEnter, ModNone), "<CR>"},
		{NewSpecialEvent(KeyBacktab, ModNone), "<Backtab>"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.event, got, tt.want)
		}
	}
}

func TestEventMatches(t *testing.T) {
	ins := NewSpecialEvent(KeyInsert, ModNone)
	tests := []struct {
		event Event
		spec  string
		want  bool
	}{
		{ins, "<Ins>", true},
		{ins, "Insert", true},
		{ins, "<S-Ins>", false},
		{NewRuneEvent('t', ModCtrl), "Ctrl+T", true},
		{NewRuneEvent('t', ModCtrl), "<C-t>", true},
		{NewRuneEvent('t', ModNone), "<C-t>", false},
		{ins, "<bogus-", false},
	}

	for _, tt := range tests {
		if got := tt.event.Matches(tt.spec); got != tt.want {
			t.Errorf("%#v.Matches(%q) = %v, want %v", tt.event, tt.spec, got, tt.want)
		}
	}
}
