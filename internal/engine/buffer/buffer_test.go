package buffer

import (
	"errors"
	"reflect"
	"testing"
)

func fill(b *Buffer, s string) {
	for i, r := range []rune(s) {
		if r != '.' {
			_ = b.Set(i, r)
		}
	}
}

func TestNewBuffer(t *testing.T) {
	b := New(4)
	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}
	if b.Len() != 4 {
		t.Errorf("Len() = %d, want 4", b.Len())
	}
	if b.LastOccupied() != -1 {
		t.Errorf("LastOccupied() = %d, want -1", b.LastOccupied())
	}
	if New(-1).Len() != 0 {
		t.Error("negative size should clamp to 0")
	}
}

func TestSetClearOccupied(t *testing.T) {
	b := New(5)
	if err := b.Set(3, 'x'); err != nil {
		t.Fatalf("Set error = %v", err)
	}
	_ = b.Set(0, 'a')
	_ = b.Set(1, 'b')

	if got := b.Occupied(); !reflect.DeepEqual(got, []int{0, 1, 3}) {
		t.Errorf("Occupied() = %v, want [0 1 3]", got)
	}
	if got := b.LogicalString(); got != "abx" {
		t.Errorf("LogicalString() = %q, want %q", got, "abx")
	}

	_ = b.Clear(1)
	if got := b.Occupied(); !reflect.DeepEqual(got, []int{0, 3}) {
		t.Errorf("Occupied() after Clear = %v, want [0 3]", got)
	}
	if b.Has(1) {
		t.Error("slot 1 should be empty after Clear")
	}
	if r, ok := b.Get(3); !ok || r != 'x' {
		t.Errorf("Get(3) = %q, %v", r, ok)
	}
}

func TestOutOfRange(t *testing.T) {
	b := New(2)
	for _, i := range []int{-1, 2, 10} {
		if err := b.Set(i, 'a'); !errors.Is(err, ErrSlotOutOfRange) {
			t.Errorf("Set(%d) error = %v, want ErrSlotOutOfRange", i, err)
		}
		if err := b.Clear(i); !errors.Is(err, ErrSlotOutOfRange) {
			t.Errorf("Clear(%d) error = %v, want ErrSlotOutOfRange", i, err)
		}
	}
	if _, ok := b.Get(5); ok {
		t.Error("Get(5) should report empty")
	}
}

func TestOccupiedIsCopy(t *testing.T) {
	b := New(3)
	_ = b.Set(0, 'a')
	occ := b.Occupied()
	occ[0] = 2
	if got := b.Occupied(); got[0] != 0 {
		t.Error("mutating Occupied() result changed the buffer")
	}
}

func TestShiftRight(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		from    int
		want    string
		wantErr error
	}{
		{"middle", "abc..", 1, "a.bc.", nil},
		{"start", "ab...", 0, ".ab..", nil},
		{"gap kept", "a.b..", 0, ".a.b.", nil},
		{"nothing after", "ab...", 3, "ab...", nil},
		{"full tail", "abcde", 2, "abcde", ErrBufferFull},
		{"last occupied before from", "....e", 4, "....e", ErrBufferFull},
		{"last occupied only earlier", "ab..e", 4, "ab..e", ErrBufferFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(len(tt.initial))
			fill(b, tt.initial)
			err := b.ShiftRight(tt.from)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ShiftRight(%d) error = %v, want %v", tt.from, err, tt.wantErr)
			}
			if got := dump(b); got != tt.want {
				t.Errorf("after ShiftRight(%d) = %q, want %q", tt.from, got, tt.want)
			}
		})
	}
}

func TestShiftRightFromEmptyTail(t *testing.T) {
	b := New(3)
	_ = b.Set(2, 'z')
	if err := b.ShiftRight(0); !errors.Is(err, ErrBufferFull) {
		t.Errorf("ShiftRight(0) error = %v, want ErrBufferFull", err)
	}

	b = New(3)
	_ = b.Set(0, 'z')
	if err := b.ShiftRight(1); err != nil {
		t.Errorf("ShiftRight(1) error = %v, want nil", err)
	}
	if got := dump(b); got != "z.." {
		t.Errorf("buffer = %q, want %q", got, "z..")
	}
}

func TestRemoveCompact(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		at      int
		want    string
	}{
		{"last", "abcde", 4, "abcd."},
		{"first", "abcde", 0, "bcde."},
		{"middle", "abc..", 1, "ac..."},
		{"gap shifts too", "ab.d.", 0, "b.d.."},
		{"empty slot", "a.c..", 1, "ac..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(len(tt.initial))
			fill(b, tt.initial)
			if err := b.RemoveCompact(tt.at); err != nil {
				t.Fatalf("RemoveCompact(%d) error = %v", tt.at, err)
			}
			if got := dump(b); got != tt.want {
				t.Errorf("after RemoveCompact(%d) = %q, want %q", tt.at, got, tt.want)
			}
		})
	}
}

func TestLogicalStringSkipsGaps(t *testing.T) {
	b := New(6)
	fill(b, "1.2..3")
	if got := b.LogicalString(); got != "123" {
		t.Errorf("LogicalString() = %q, want %q", got, "123")
	}
}

func TestResetAndClone(t *testing.T) {
	b := New(3)
	fill(b, "abc")
	if !b.IsFull() {
		t.Error("buffer should be full")
	}

	c := b.Clone()
	b.Reset()

	if !b.IsEmpty() || b.Count() != 0 {
		t.Error("Reset should empty the buffer")
	}
	if got := c.LogicalString(); got != "abc" {
		t.Errorf("clone LogicalString() = %q, want %q", got, "abc")
	}
}

// dump renders the buffer with '.' for empty slots.
func dump(b *Buffer) string {
	out := make([]rune, b.Len())
	for i := range out {
		if r, ok := b.Get(i); ok {
			out[i] = r
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}
