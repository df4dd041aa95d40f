// Package event provides an ordered observer list for parameterless
// notifications.
package event

// Subscription identifies a handler registered on a Signal.
type Subscription uint64

type handler struct {
	id Subscription
	fn func()
}

// Signal calls its handlers in subscription order when emitted.
// The zero value is ready to use and has no subscribers.
type Signal struct {
	handlers []handler
	nextID   Subscription
}

// Subscribe adds fn to the handler list and returns a token for Unsubscribe.
func (s *Signal) Subscribe(fn func()) Subscription {
	s.nextID++
	s.handlers = append(s.handlers, handler{id: s.nextID, fn: fn})
	return s.nextID
}

// Unsubscribe removes the handler registered under id.
// Returns false if no such handler exists.
func (s *Signal) Unsubscribe(id Subscription) bool {
	for i, h := range s.handlers {
		if h.id == id {
			s.handlers = append(s.handlers[:i:i], s.handlers[i+1:]...)
			return true
		}
	}
	return false
}

// Emit calls every handler subscribed at the time of the call.
// Handlers may subscribe or unsubscribe while the signal is emitting;
// changes take effect on the next Emit.
func (s *Signal) Emit() {
	if len(s.handlers) == 0 {
		return
	}
	snapshot := s.handlers
	for _, h := range snapshot {
		if h.fn != nil {
			h.fn()
		}
	}
}

// Len returns the number of subscribed handlers.
func (s *Signal) Len() int {
	return len(s.handlers)
}
