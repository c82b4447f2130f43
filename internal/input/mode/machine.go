package mode

import "sync"

// ChangeCallback is called after the mode changes.
type ChangeCallback func(from, to Mode)

// Machine holds the current mode of one window.
type Machine struct {
	mu sync.RWMutex

	current   Mode
	callbacks []ChangeCallback
}

// NewMachine creates a machine in Normal mode.
func NewMachine() *Machine {
	return &Machine{current: Normal}
}

// Current returns the current mode.
func (m *Machine) Current() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Set changes the current mode. Anything other than Insert selects Normal.
// Callbacks run only when the mode actually changes.
func (m *Machine) Set(to Mode) {
	if to != Insert {
		to = Normal
	}

	m.mu.Lock()
	from := m.current
	if from == to {
		m.mu.Unlock()
		return
	}
	m.current = to
	callbacks := make([]ChangeCallback, len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	// Notify callbacks outside of lock
	for _, cb := range callbacks {
		cb(from, to)
	}
}

// Reset returns to Normal mode.
func (m *Machine) Reset() {
	m.Set(Normal)
}

// OnChange registers a callback for mode changes.
func (m *Machine) OnChange(cb ChangeCallback) {
	if cb == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, cb)
}
