package agent

import (
	"sync"
	"time"
)

// EventKind identifies the type of run event.
type EventKind string

const (
	EventRunStart        EventKind = "run_start"
	EventUserPrompt      EventKind = "user_prompt"
	EventAssistantReply  EventKind = "assistant_reply"
	EventActionDispatch  EventKind = "action_dispatch"
	EventObservation     EventKind = "observation"
	EventRepeatWarning   EventKind = "repeat_warning"
	EventBudgetExhausted EventKind = "budget_exhausted"
	EventFinalAnswer     EventKind = "final_answer"
	EventRunEnd          EventKind = "run_end"
	EventError           EventKind = "error"
)

// Event is a typed event emitted by the agent loop.
type Event struct {
	Kind      EventKind              `json:"kind"`
	Timestamp time.Time              `json:"timestamp"`
	AgentID   string                 `json:"agent_id"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// Emitter delivers typed events to the host application via a channel.
type Emitter struct {
	agentID string
	ch      chan Event
	closed  bool
	mu      sync.Mutex
}

// NewEmitter creates an Emitter with a buffered channel.
func NewEmitter(agentID string, bufferSize int) *Emitter {
	if bufferSize <= 0 {
		bufferSize = 256
	}
	return &Emitter{
		agentID: agentID,
		ch:      make(chan Event, bufferSize),
	}
}

// Emit sends an event to the channel. If the emitter is closed or the
// channel is full, the event is silently dropped so the loop never blocks.
func (e *Emitter) Emit(kind EventKind, data map[string]interface{}) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	event := Event{
		Kind:      kind,
		Timestamp: time.Now(),
		AgentID:   e.agentID,
		Data:      data,
	}
	select {
	case e.ch <- event:
	default:
	}
}

// Events returns the read-only event channel.
func (e *Emitter) Events() <-chan Event {
	return e.ch
}

// Close closes the event channel. Safe to call multiple times.
func (e *Emitter) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.closed {
		e.closed = true
		close(e.ch)
	}
}
