// Package otel records typed observability events for newsdesk.
//
// Events are serialized as JSONL by an async Logger. A RingBuffer keeps the
// most recent events in memory for the TUI debug overlay.
package otel

import (
	"encoding/json"
	"time"
)

// Level defines event severity for filtering.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// EventKind identifies the category of an event.
// Dot-delimited: "<subsystem>.<action>".
type EventKind string

const (
	// Headline fetch events
	KindHeadlinesStart    EventKind = "headlines.start"
	KindHeadlinesComplete EventKind = "headlines.complete"
	KindHeadlinesFallback EventKind = "headlines.fallback"
	KindHeadlinesError    EventKind = "headlines.error"

	// Search events
	KindSearchStart    EventKind = "search.start"
	KindSearchComplete EventKind = "search.complete"
	KindSearchError    EventKind = "search.error"

	// Completion events
	KindCompletionStart    EventKind = "completion.start"
	KindCompletionComplete EventKind = "completion.complete"
	KindCompletionError    EventKind = "completion.error"
	KindCompletionSkipped  EventKind = "completion.skipped"

	// UI events
	KindCategory EventKind = "ui.category"
	KindChat     EventKind = "ui.chat"

	// System events
	KindStartup  EventKind = "sys.startup"
	KindShutdown EventKind = "sys.shutdown"
)

// Event is the universal observability record. Every field except Kind and
// Time is optional.
type Event struct {
	Time      time.Time      `json:"t"`
	Level     Level          `json:"level,omitempty"`
	Kind      EventKind      `json:"kind"`
	Comp      string         `json:"comp,omitempty"` // "news", "brain", "ui", "main"
	SessionID string         `json:"session_id,omitempty"`
	RequestID string         `json:"rid,omitempty"` // correlates start/complete/fallback
	Dur       time.Duration  `json:"-"`
	DurMs     float64        `json:"dur_ms,omitempty"`
	Count     int            `json:"count,omitempty"`
	Category  string         `json:"category,omitempty"`
	Provider  string         `json:"provider,omitempty"`
	Query     string         `json:"query,omitempty"`
	Err       string         `json:"err,omitempty"`
	Msg       string         `json:"msg,omitempty"`
	Extra     map[string]any `json:"extra,omitempty"`
}

// MarshalJSON converts Dur to DurMs.
func (e Event) MarshalJSON() ([]byte, error) {
	type alias Event
	a := alias(e)
	if e.Dur > 0 {
		a.DurMs = float64(e.Dur) / float64(time.Millisecond)
	}
	return json.Marshal(a)
}

// Emitter accepts events. *Logger implements it; components hold an Emitter
// so tests can capture events without a file.
type Emitter interface {
	Emit(e Event)
}

// Emit sends e to em when em is non-nil.
func Emit(em Emitter, e Event) {
	if em != nil {
		em.Emit(e)
	}
}
