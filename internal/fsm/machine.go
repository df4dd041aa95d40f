// Package fsm provides a small named-state machine with one-level history.
//
// Each state is registered with an entry action that runs exactly once per
// transition into it. Entry actions may call SetState again: the nested
// transition completes before the outer call returns, and bookkeeping is
// always updated before the action runs so the nested call sees the right
// previous state.
package fsm

import (
	"errors"
	"fmt"

	"github.com/samber/mo"
)

var (
	// ErrDuplicateState is returned when a state id is registered twice.
	ErrDuplicateState = errors.New("state already registered")
	// ErrUnknownState is returned when transitioning to an unregistered state,
	// which includes any transition on a disposed machine.
	ErrUnknownState = errors.New("unknown state")
)

// Action is the side effect run when a state is entered.
type Action func()

// Machine holds the state registry and the current/previous states.
type Machine[S comparable] struct {
	actions  map[S]Action
	current  mo.Option[S]
	previous mo.Option[S]
	hooks    []func(from mo.Option[S], to S)
}

// New creates an empty machine. No state is active until the first SetState.
func New[S comparable]() *Machine[S] {
	return &Machine[S]{
		actions:  make(map[S]Action),
		current:  mo.None[S](),
		previous: mo.None[S](),
	}
}

// CreateState registers id with its entry action. When activate is true the
// machine transitions to id right away.
func (m *Machine[S]) CreateState(id S, action Action, activate bool) error {
	if _, ok := m.actions[id]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateState, id)
	}
	if action == nil {
		action = func() {}
	}
	m.actions[id] = action
	if activate {
		return m.SetState(id)
	}
	return nil
}

// SetState transitions to id and runs its entry action.
// Setting the state that is already current does nothing.
func (m *Machine[S]) SetState(id S) error {
	action, ok := m.actions[id]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownState, id)
	}
	if cur, ok := m.current.Get(); ok && cur == id {
		return nil
	}

	from := m.current
	m.previous = m.current
	m.current = mo.Some(id)

	for _, hook := range m.hooks {
		hook(from, id)
	}
	action()
	return nil
}

// GoToPreviousState transitions back to the previous state.
// It is a no-op when no previous state has been recorded.
func (m *Machine[S]) GoToPreviousState() error {
	prev, ok := m.previous.Get()
	if !ok {
		return nil
	}
	return m.SetState(prev)
}

// OnTransition registers fn to run on every transition, after current and
// previous are updated and before the entry action.
func (m *Machine[S]) OnTransition(fn func(from mo.Option[S], to S)) {
	m.hooks = append(m.hooks, fn)
}

// Current returns the active state, if any.
func (m *Machine[S]) Current() mo.Option[S] {
	return m.current
}

// Previous returns the state active before the current one, if any.
func (m *Machine[S]) Previous() mo.Option[S] {
	return m.previous
}

// Is reports whether id is the active state.
func (m *Machine[S]) Is(id S) bool {
	cur, ok := m.current.Get()
	return ok && cur == id
}

// Registered reports whether id has an entry action.
func (m *Machine[S]) Registered(id S) bool {
	_, ok := m.actions[id]
	return ok
}

// Dispose clears the registry. Current and previous are kept for inspection
// but every later SetState fails with ErrUnknownState.
func (m *Machine[S]) Dispose() {
	clear(m.actions)
	m.hooks = nil
}
