package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/maskfield/internal/input/key"
	"github.com/dshills/maskfield/internal/renderer/core"
)

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, '7', tcell.ModNone), "7"},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "<Space>"},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), "<A-x>"},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone), "<BS>"},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), "<BS>"},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "<CR>"},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), "<Tab>"},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), "<Backtab>"},
		{"insert", tcell.NewEventKey(tcell.KeyInsert, 0, tcell.ModNone), "<Ins>"},
		{"shift insert", tcell.NewEventKey(tcell.KeyInsert, 0, tcell.ModShift), "<S-Ins>"},
		{"ctrl a", tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModCtrl), "<C-a>"},
		{"ctrl q", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), "<C-q>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convertKey(tt.ev)
			if !ok {
				t.Fatal("convertKey() dropped the event")
			}
			want := key.MustParse(tt.want)
			if !got.Equals(want) {
				t.Errorf("convertKey() = %v, want %v", got, want)
			}
		})
	}
}

func TestConvertFunctionKey(t *testing.T) {
	got, ok := convertKey(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone))
	if !ok || got.Key != key.KeyF5 {
		t.Errorf("convertKey(F5) = %v, %v", got, ok)
	}
	if _, ok := convertKey(tcell.NewEventKey(tcell.KeyF20, 0, tcell.ModNone)); ok {
		t.Error("F20 should be dropped")
	}
}

func TestConvertMouseButton(t *testing.T) {
	tests := []struct {
		in   tcell.ButtonMask
		want MouseButton
	}{
		{tcell.Button1, MouseLeft},
		{tcell.Button2, MouseRight},
		{tcell.Button3, MouseMiddle},
		{tcell.WheelUp, MouseWheelUp},
		{tcell.WheelDown, MouseWheelDown},
		{tcell.ButtonNone, MouseNone},
	}
	for _, tt := range tests {
		if got := convertMouseButton(tt.in); got != tt.want {
			t.Errorf("convertMouseButton(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTranslatePaste(t *testing.T) {
	term := &Terminal{}

	steps := []tcell.Event{
		tcell.NewEventPaste(true),
		tcell.NewEventKey(tcell.KeyRune, '5', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, '5', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModNone),
	}
	for i, ev := range steps {
		if _, ok := term.translate(ev); ok {
			t.Fatalf("step %d should be swallowed", i)
		}
	}

	got, ok := term.translate(tcell.NewEventPaste(false))
	if !ok || got.Type != EventPaste || got.Text != "55\n1" {
		t.Errorf("paste end = %+v, %v", got, ok)
	}

	got, ok = term.translate(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone))
	if !ok || got.Type != EventKey || got.Key.Rune != 'z' {
		t.Errorf("key after paste = %+v, %v", got, ok)
	}
}

func TestTranslateMouseAndFocus(t *testing.T) {
	term := &Terminal{}

	got, ok := term.translate(tcell.NewEventMouse(4, 9, tcell.Button2, tcell.ModCtrl))
	if !ok || got.Type != EventMouse || got.X != 4 || got.Y != 9 || got.Button != MouseRight || !got.Mod.HasCtrl() {
		t.Errorf("mouse = %+v, %v", got, ok)
	}

	got, ok = term.translate(tcell.NewEventFocus(true))
	if !ok || got.Type != EventFocus || !got.Focused {
		t.Errorf("focus = %+v, %v", got, ok)
	}
}

func TestColorConversionRoundTrip(t *testing.T) {
	colors := []core.Color{
		core.ColorDefault,
		core.ColorFromIndex(9),
		core.ColorFromRGB(12, 200, 99),
	}
	for _, c := range colors {
		if got := convertTcellColor(convertColor(c)); !got.Equals(c) {
			t.Errorf("round trip %s = %s", c, got)
		}
	}

	s := core.NewStyle(core.ColorRed).Bold().Reverse()
	if got := convertTcellStyle(convertStyle(s)); !got.Equals(s) {
		t.Errorf("style round trip = %+v, want %+v", got, s)
	}
}

func TestTerminalSimulation(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	term := NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer term.Shutdown()

	screen.SetSize(20, 5)
	term.SetCell(2, 1, core.NewStyledCell('Q', core.DefaultStyle()))
	term.Show()
	if got := term.GetCell(2, 1); got.Rune != 'Q' {
		t.Errorf("GetCell() = %q, want 'Q'", got.Rune)
	}

	posted := false
	term.PostEvent(Event{Type: EventInterrupt, Task: func() { posted = true }})
	for {
		ev := term.PollEvent()
		if ev.Type == EventInterrupt {
			ev.Task()
			break
		}
	}
	if !posted {
		t.Error("posted task did not arrive")
	}
}
