package mode

import "github.com/dshills/ghostedit/internal/input/key"

// ChangeCallback is called when the mode changes.
type ChangeCallback func(from, to Mode)

// Machine holds the current mode and applies Transition to key input.
//
// Machine is not safe for concurrent use.
type Machine struct {
	current   Mode
	previous  Mode
	callbacks []ChangeCallback
}

// NewMachine creates a machine in the Initial mode.
func NewMachine() *Machine {
	return &Machine{current: Initial, previous: Initial}
}

// Current returns the active mode.
func (m *Machine) Current() Mode {
	return m.current
}

// Previous returns the mode active before the last change.
func (m *Machine) Previous() Mode {
	return m.previous
}

// Handle applies in to the current mode. It returns the emitted command,
// or false if the key emits nothing. The mode changes only when the
// table says so.
func (m *Machine) Handle(in key.Input) (Command, bool) {
	next, cmd, ok := Transition(m.current, in)
	if !ok {
		return "", false
	}
	m.set(next)
	return cmd, true
}

// OnChange registers a callback for mode changes.
// Callbacks run synchronously, in registration order.
func (m *Machine) OnChange(cb ChangeCallback) {
	if cb == nil {
		return
	}
	m.callbacks = append(m.callbacks, cb)
}

// Reset returns the machine to the Initial mode.
func (m *Machine) Reset() {
	m.set(Initial)
}

// set switches to next and notifies callbacks if the mode changed.
func (m *Machine) set(next Mode) {
	if next == m.current {
		return
	}
	from := m.current
	m.previous = from
	m.current = next
	for _, cb := range m.callbacks {
		cb(from, next)
	}
}
