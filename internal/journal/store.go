package journal

import (
	"sync"
	"time"
)

// Store is an append-only in-memory event journal. It is safe for
// concurrent use.
type Store struct {
	mu     sync.Mutex
	events []Event
}

// NewStore creates an empty journal.
func NewStore() *Store {
	return &Store{}
}

// Append records an event, assigning its sequence number and, when unset,
// its timestamp. The stored event is returned.
func (s *Store) Append(evt Event) Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	evt.Seq = uint64(len(s.events)) + 1
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now().UTC()
	}
	s.events = append(s.events, evt)
	return evt
}

// Events returns a copy of the journal in append order.
func (s *Store) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Len reports the number of recorded events.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}
