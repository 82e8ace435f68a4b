// Package states implements game state management.
package states

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Controls is the per-frame input a state reacts to.
type Controls interface {
	// Activated reports any key or mouse button press this frame.
	Activated() bool
	IsKeyPressed(scancode sdl.Scancode) bool
}

// State represents a game state (title prompt, snowball fight).
type State interface {
	// Enter is called when entering this state.
	Enter() error

	// Exit is called when leaving this state.
	Exit() error

	// Update is called every frame with dt in ms.
	Update(dt float64) error

	// Render is called every frame to draw the state.
	Render() error

	// HandleInput processes the frame's input.
	HandleInput(in Controls) error
}

// Manager manages game state transitions.
type Manager struct {
	current State
	next    State
}

// NewManager creates a new state manager.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the current state.
func (m *Manager) Current() State {
	return m.current
}

// Change schedules a state change for the next Update.
func (m *Manager) Change(next State) {
	m.next = next
}

// HandleInput forwards input to the current state.
func (m *Manager) HandleInput(in Controls) error {
	if m.current != nil {
		return m.current.HandleInput(in)
	}
	return nil
}

// Update processes state changes and updates current state.
func (m *Manager) Update(dt float64) error {
	if m.next != nil {
		if m.current != nil {
			if err := m.current.Exit(); err != nil {
				return err
			}
		}
		m.current = m.next
		m.next = nil
		if err := m.current.Enter(); err != nil {
			return err
		}
	}

	if m.current != nil {
		return m.current.Update(dt)
	}
	return nil
}

// Render renders the current state.
func (m *Manager) Render() error {
	if m.current != nil {
		return m.current.Render()
	}
	return nil
}

// Close exits the current state.
func (m *Manager) Close() error {
	if m.current == nil {
		return nil
	}
	err := m.current.Exit()
	m.current = nil
	m.next = nil
	return err
}
