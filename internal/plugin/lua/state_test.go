package lua

import (
	"errors"
	"strings"
	"testing"
	"time"

	lua "github.com/yuin/gopher-lua"
)

func TestStateCall(t *testing.T) {
	s := NewState()
	defer s.Close()

	if err := s.DoString(`function add(a, b) return a + b, "done" end`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	results, err := s.Call("add", lua.LNumber(2), lua.LNumber(3))
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if len(results) != 2 || results[0] != lua.LNumber(5) || results[1] != lua.LString("done") {
		t.Errorf("Call() = %v", results)
	}
	if top := s.L.GetTop(); top != 0 {
		t.Errorf("stack top after Call = %d, want 0", top)
	}

	if _, err := s.Call("missing"); err == nil {
		t.Error("Call(missing) should fail")
	}
}

func TestStateSandbox(t *testing.T) {
	s := NewState()
	defer s.Close()

	for _, name := range []string{"io", "os", "debug", "package", "dofile", "loadfile", "load", "loadstring", "require", "module"} {
		if v := s.L.GetGlobal(name); v != lua.LNil {
			t.Errorf("global %s = %v, want nil", name, v.Type())
		}
	}
	for _, name := range []string{"string", "table", "math", "tostring"} {
		if v := s.L.GetGlobal(name); v == lua.LNil {
			t.Errorf("global %s missing", name)
		}
	}

	if err := s.DoString(`os.exit(1)`); err == nil {
		t.Error("os.exit should not be reachable")
	}
}

func TestStateTimeout(t *testing.T) {
	s := NewState(WithExecutionTimeout(20 * time.Millisecond))
	defer s.Close()

	if err := s.DoString(`function spin() while true do end end`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	_, err := s.Call("spin")
	if !errors.Is(err, ErrExecutionTimeout) {
		t.Fatalf("Call(spin) error = %v, want ErrExecutionTimeout", err)
	}

	// The state stays usable after a timeout.
	if err := s.DoString(`x = 1`); err != nil {
		t.Errorf("DoString() after timeout error = %v", err)
	}
}

func TestStateClosed(t *testing.T) {
	s := NewState()
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if !s.IsClosed() {
		t.Error("IsClosed() = false")
	}
	if err := s.DoString("x = 1"); !errors.Is(err, ErrStateClosed) {
		t.Errorf("DoString() error = %v, want ErrStateClosed", err)
	}
	if _, err := s.Call("x"); !errors.Is(err, ErrStateClosed) {
		t.Errorf("Call() error = %v, want ErrStateClosed", err)
	}
	if s.HasFunction("x") {
		t.Error("HasFunction on closed state")
	}
}

func TestStateSyntaxError(t *testing.T) {
	s := NewState()
	defer s.Close()

	err := s.DoString(`function (`)
	if err == nil || !strings.Contains(err.Error(), "syntax") && !strings.Contains(err.Error(), "parse") {
		t.Errorf("DoString() error = %v, want a syntax error", err)
	}
}
