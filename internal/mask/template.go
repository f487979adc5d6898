package mask

// Template is a compiled mask.
// Display positions are rune offsets into the mask string.
type Template struct {
	source  string
	chars   []rune
	slots   []int   // display position of each slot, strictly increasing
	classes []Class // class of each slot, aligned with slots
	index   []int   // display position -> slot index, -1 for literals
	complex bool
}

// Compile parses a mask template.
// It fails with a *ConfigurationError when the mask is empty or has no
// placeholder markers.
func Compile(source string) (*Template, error) {
	if source == "" {
		return nil, &ConfigurationError{Err: ErrEmptyMask}
	}

	chars := []rune(source)
	t := &Template{
		source: source,
		chars:  chars,
		index:  make([]int, len(chars)),
	}

	for pos, r := range chars {
		class := ClassOf(r)
		if !class.IsFillable() {
			t.index[pos] = -1
			continue
		}
		t.index[pos] = len(t.slots)
		t.slots = append(t.slots, pos)
		t.classes = append(t.classes, class)
	}

	if len(t.slots) == 0 {
		return nil, &ConfigurationError{Mask: source, Err: ErrNoSlots}
	}

	for i := 1; i < len(t.classes); i++ {
		if t.classes[i] != t.classes[i-1] {
			t.complex = true
			break
		}
	}

	return t, nil
}

// MustCompile is like Compile but panics on error.
// Use only for known-valid masks in initialization code.
func MustCompile(source string) *Template {
	t, err := Compile(source)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the original mask.
func (t *Template) String() string {
	return t.source
}

// Len returns the display length of the mask in runes.
func (t *Template) Len() int {
	return len(t.chars)
}

// Chars returns a copy of the template characters.
func (t *Template) Chars() []rune {
	out := make([]rune, len(t.chars))
	copy(out, t.chars)
	return out
}

// CharAt returns the template character at display position pos,
// or 0 if pos is out of range.
func (t *Template) CharAt(pos int) rune {
	if pos < 0 || pos >= len(t.chars) {
		return 0
	}
	return t.chars[pos]
}

// Slots returns a copy of the slot display positions.
func (t *Template) Slots() []int {
	out := make([]int, len(t.slots))
	copy(out, t.slots)
	return out
}

// SlotCount returns the number of fillable positions.
func (t *Template) SlotCount() int {
	return len(t.slots)
}

// SlotPosition returns the display position of slot i.
func (t *Template) SlotPosition(i int) int {
	return t.slots[i]
}

// SlotClass returns the class of slot i, or ClassNone if i is out of range.
func (t *Template) SlotClass(i int) Class {
	if i < 0 || i >= len(t.classes) {
		return ClassNone
	}
	return t.classes[i]
}

// Accepts reports whether r may be entered into slot i.
func (t *Template) Accepts(i int, r rune) bool {
	return t.SlotClass(i).Accepts(r)
}

// IsComplex reports whether two slots adjacent in slot order differ in class.
func (t *Template) IsComplex() bool {
	return t.complex
}

// SlotAt returns the slot index at exactly display position pos.
func (t *Template) SlotAt(pos int) (int, bool) {
	if pos < 0 || pos >= len(t.index) || t.index[pos] < 0 {
		return -1, false
	}
	return t.index[pos], true
}

// SlotAtOrAfter returns the index of the first slot whose display position
// is >= pos.
func (t *Template) SlotAtOrAfter(pos int) (int, bool) {
	if pos < 0 {
		pos = 0
	}
	for i, p := range t.slots {
		if p >= pos {
			return i, true
		}
	}
	return -1, false
}

// FirstSlot returns the display position of the first slot.
func (t *Template) FirstSlot() int {
	return t.slots[0]
}

// LastSlot returns the display position of the last slot.
func (t *Template) LastSlot() int {
	return t.slots[len(t.slots)-1]
}

// MatchesLiterals reports whether s has the template's display length and
// carries the template's literal character at every literal position.
func (t *Template) MatchesLiterals(s []rune) bool {
	if len(s) != len(t.chars) {
		return false
	}
	for pos, r := range t.chars {
		if t.index[pos] < 0 && s[pos] != r {
			return false
		}
	}
	return true
}
