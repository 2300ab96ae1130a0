package agent

import "testing"

func TestEmitterDeliversEvents(t *testing.T) {
	e := NewEmitter("agent-1", 8)
	e.Emit(EventRunStart, map[string]interface{}{"question": "q"})
	e.Emit(EventRunEnd, nil)
	e.Close()

	var got []Event
	for ev := range e.Events() {
		got = append(got, ev)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].Kind != EventRunStart || got[1].Kind != EventRunEnd {
		t.Errorf("unexpected kinds: %v, %v", got[0].Kind, got[1].Kind)
	}
	if got[0].AgentID != "agent-1" {
		t.Errorf("AgentID = %q", got[0].AgentID)
	}
	if got[0].Timestamp.IsZero() {
		t.Error("timestamp should be set")
	}
}

func TestEmitterDropsWhenFull(t *testing.T) {
	e := NewEmitter("agent-1", 1)
	e.Emit(EventRunStart, nil)
	e.Emit(EventRunEnd, nil) // buffer full, dropped
	e.Close()

	count := 0
	for range e.Events() {
		count++
	}
	if count != 1 {
		t.Errorf("expected 1 buffered event, got %d", count)
	}
}

func TestEmitterCloseIdempotent(t *testing.T) {
	e := NewEmitter("agent-1", 1)
	e.Close()
	e.Close()
	e.Emit(EventRunStart, nil) // no panic after close
}
