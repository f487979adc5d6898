package mode

// ChangeCallback is called when the mode changes.
type ChangeCallback func(from, to Mode)

// Manager holds the current mode of one field.
// It is owned by that field and is not safe for concurrent use.
type Manager struct {
	current     Mode
	allowToggle bool
	callbacks   []ChangeCallback
}

// NewManager creates a manager starting in initial.
// When allowToggle is false the mode never changes.
func NewManager(initial Mode, allowToggle bool) *Manager {
	return &Manager{
		current:     initial,
		allowToggle: allowToggle,
	}
}

// ForMask creates a manager for a mask: simple masks start in Insert and may
// toggle, complex masks are locked in Overwrite.
func ForMask(complex bool) *Manager {
	return NewManager(Initial(complex), !complex)
}

// Current returns the current mode.
func (m *Manager) Current() Mode {
	return m.current
}

// CanToggle reports whether Toggle may change the mode.
func (m *Manager) CanToggle() bool {
	return m.allowToggle
}

// IsInsert returns true in Insert mode.
func (m *Manager) IsInsert() bool {
	return m.current == Insert
}

// Highlight reports whether the cursor cell is highlighted.
func (m *Manager) Highlight() bool {
	return m.current.Highlight()
}

// Toggle switches between Insert and Overwrite.
// Returns false without changing anything if toggling is not allowed.
func (m *Manager) Toggle() bool {
	if !m.allowToggle {
		return false
	}
	m.set(m.current.Toggled())
	return true
}

// Set switches to mode to. Returns false if toggling is not allowed and to
// differs from the current mode.
func (m *Manager) Set(to Mode) bool {
	if to == m.current {
		return true
	}
	if !m.allowToggle {
		return false
	}
	m.set(to)
	return true
}

// OnChange registers a callback for mode changes.
func (m *Manager) OnChange(cb ChangeCallback) {
	m.callbacks = append(m.callbacks, cb)
}

func (m *Manager) set(to Mode) {
	from := m.current
	m.current = to
	for _, cb := range m.callbacks {
		cb(from, to)
	}
}
