package otel

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestEmitWritesJSONL(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	l.Emit(Event{Kind: KindHeadlinesStart, Level: LevelInfo, Comp: "news", Category: "sports", RequestID: "r1"})
	l.Close()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	want := map[string]string{
		"kind":     "headlines.start",
		"level":    "info",
		"comp":     "news",
		"category": "sports",
		"rid":      "r1",
	}
	for k, v := range want {
		if decoded[k] != v {
			t.Errorf("%s = %v, want %v", k, decoded[k], v)
		}
	}
	if decoded["session_id"] != l.SessionID() {
		t.Errorf("session_id = %v, want %v", decoded["session_id"], l.SessionID())
	}
}

func TestDurationSerializedAsMillis(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)
	l.Emit(Event{Kind: KindCompletionComplete, Dur: 250 * time.Millisecond})
	l.Close()

	var decoded map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["dur_ms"] != float64(250) {
		t.Errorf("dur_ms = %v, want 250", decoded["dur_ms"])
	}
}

func TestLoggerFeedsRingBuffer(t *testing.T) {
	ring := NewRingBuffer(8)
	l := NewNullLogger()
	l.SetRingBuffer(ring)

	l.Info(KindStartup, "main", "hello")
	l.Error(KindHeadlinesError, "news", nil)
	l.Close()

	if ring.Len() != 2 {
		t.Fatalf("ring len = %d, want 2", ring.Len())
	}
	stats := ring.Stats()
	if stats[KindStartup] != 1 || stats[KindHeadlinesError] != 1 {
		t.Errorf("unexpected stats: %v", stats)
	}
}

func TestEmitAfterCloseIsDropped(t *testing.T) {
	l := NewNullLogger()
	l.Close()
	l.Emit(Event{Kind: KindShutdown})
	if l.Dropped() != 1 {
		t.Errorf("dropped = %d, want 1", l.Dropped())
	}
	l.Close() // idempotent
}

func TestConcurrentEmit(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Emit(Event{Kind: KindSearchStart})
		}()
	}
	wg.Wait()
	l.Close()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 50 {
		t.Errorf("expected 50 lines, got %d", len(lines))
	}
}

func TestRingBufferWrapAround(t *testing.T) {
	r := NewRingBuffer(4)
	for i := 0; i < 6; i++ {
		r.Push(Event{Kind: KindChat, Count: i})
	}

	snap := r.Snapshot()
	if len(snap) != 4 {
		t.Fatalf("len = %d, want 4", len(snap))
	}
	for i, e := range snap {
		if e.Count != i+2 {
			t.Errorf("snap[%d].Count = %d, want %d", i, e.Count, i+2)
		}
	}

	last := r.Last(2)
	if len(last) != 2 || last[0].Count != 4 || last[1].Count != 5 {
		t.Errorf("Last(2) = %+v", last)
	}
	if r.Last(0) != nil {
		t.Error("Last(0) should be nil")
	}
	if got := r.Last(10); len(got) != 4 {
		t.Errorf("Last(10) len = %d, want 4", len(got))
	}
}

func TestRingBufferCopiesExtra(t *testing.T) {
	r := NewRingBuffer(2)
	extra := map[string]any{"k": 1}
	r.Push(Event{Kind: KindChat, Extra: extra})
	extra["k"] = 2

	if got := r.Snapshot()[0].Extra["k"]; got != 1 {
		t.Errorf("Extra aliased: got %v", got)
	}
}

func TestEmitHelperNilSafe(t *testing.T) {
	Emit(nil, Event{Kind: KindStartup})

	r := NewRingBuffer(1)
	Emit(r, Event{Kind: KindStartup})
	if r.Len() != 1 {
		t.Error("Emit should forward to a non-nil emitter")
	}
}
