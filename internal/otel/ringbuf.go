package otel

import "sync"

// DefaultRingSize is the default ring buffer capacity.
const DefaultRingSize = 256

// RingBuffer keeps the most recent events. Safe for concurrent use.
type RingBuffer struct {
	mu     sync.Mutex
	events []Event
	next   int
	filled bool
}

// NewRingBuffer creates a ring buffer holding up to size events.
func NewRingBuffer(size int) *RingBuffer {
	if size <= 0 {
		size = DefaultRingSize
	}
	return &RingBuffer{events: make([]Event, size)}
}

// Push stores e, evicting the oldest event when full.
func (r *RingBuffer) Push(e Event) {
	if e.Extra != nil {
		cp := make(map[string]any, len(e.Extra))
		for k, v := range e.Extra {
			cp[k] = v
		}
		e.Extra = cp
	}

	r.mu.Lock()
	r.events[r.next] = e
	r.next++
	if r.next == len(r.events) {
		r.next = 0
		r.filled = true
	}
	r.mu.Unlock()
}

// ordered returns the buffered events oldest first. Caller holds r.mu.
func (r *RingBuffer) ordered() []Event {
	if !r.filled {
		out := make([]Event, r.next)
		copy(out, r.events[:r.next])
		return out
	}
	out := make([]Event, 0, len(r.events))
	out = append(out, r.events[r.next:]...)
	return append(out, r.events[:r.next]...)
}

// Snapshot returns a copy of all buffered events, oldest first.
func (r *RingBuffer) Snapshot() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ordered()
}

// Last returns up to n of the most recent events, oldest first.
func (r *RingBuffer) Last(n int) []Event {
	if n <= 0 {
		return nil
	}
	all := r.Snapshot()
	if n >= len(all) {
		return all
	}
	return all[len(all)-n:]
}

// Len returns the number of buffered events.
func (r *RingBuffer) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.filled {
		return len(r.events)
	}
	return r.next
}

// Cap returns the buffer capacity.
func (r *RingBuffer) Cap() int {
	return len(r.events)
}

// Stats counts buffered events by kind.
func (r *RingBuffer) Stats() map[EventKind]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[EventKind]int)
	for _, e := range r.ordered() {
		counts[e.Kind]++
	}
	return counts
}

// Emit lets a RingBuffer stand in for a Logger, mostly in tests.
func (r *RingBuffer) Emit(e Event) {
	r.Push(e)
}
