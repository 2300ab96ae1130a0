package agent

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Capability is a named, single-argument, single-result external operation
// the model can request via an action line. Implementations must carry their
// own timeouts and must not block indefinitely. A returned error is rendered
// as an Observation by the dispatcher; "soft" domain outcomes (no results
// found, file missing) should be returned as ordinary result strings.
type Capability interface {
	// Name returns the identifier used on action lines (letters, digits,
	// underscore).
	Name() string

	// Description documents the capability for the system prompt, usage
	// guidance and an example action line included.
	Description() string

	// Call executes the capability with the verbatim argument string.
	Call(ctx context.Context, input string) (string, error)
}

// Registry manages capability registration and lookup. The set of
// capabilities is fixed before a run starts; lookups during a run are
// read-only.
type Registry struct {
	caps map[string]Capability
	mu   sync.RWMutex
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		caps: make(map[string]Capability),
	}
}

// Register adds or replaces a capability.
func (r *Registry) Register(c Capability) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.caps[c.Name()] = c
}

// Get returns a capability by name, or nil if not registered.
func (r *Registry) Get(name string) Capability {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.caps[name]
}

// Names returns the sorted names of all registered capabilities.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.caps))
	for name := range r.caps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered capabilities.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.caps)
}

// All returns the registered capabilities in name order.
func (r *Registry) All() []Capability {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.caps))
	for name := range r.caps {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Capability, 0, len(names))
	for _, name := range names {
		out = append(out, r.caps[name])
	}
	return out
}

// safeCall invokes a capability, converting a panic into an error.
// Capabilities are untrusted collaborators from the loop's point of view;
// even one that violates its contract must not take down the run.
func safeCall(ctx context.Context, c Capability, input string) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return c.Call(ctx, input)
}
