// File: api/layer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Recording layer contract and the span registry it observes.

package api

import "sync"

// SpanID identifies a live span inside a Registry. The zero value means
// "no span" and is never assigned to a real span.
type SpanID uint64

// Registry is the host-side index of live spans. The host must retain the
// entry for any id it hands to a Layer callback for the duration of that
// callback; a nil lookup for such an id is a programming bug.
type Registry interface {
	// Span returns the entry for id, or nil if the span is gone.
	Span(id SpanID) SpanEntry
}

// SpanEntry is a live span held by the host registry.
type SpanEntry interface {
	ID() SpanID
	Meta() *Metadata
	// Parent returns the enclosing span entry, or nil at the root.
	Parent() SpanEntry
	// Extensions returns the per-span extension storage. The returned
	// pointer is stable for the lifetime of the entry.
	Extensions() *Extensions
}

// Layer observes the host's span/event stream. Implementations must be
// safe for concurrent use: callbacks arrive on arbitrary goroutines.
type Layer interface {
	// OnNewSpan is invoked once when a span is created, with its initial
	// attributes. The parent chain is reachable via reg and the entry.
	OnNewSpan(reg Registry, id SpanID, attrs RecordFields)

	// OnRecord is invoked for fields recorded on an existing span after
	// creation.
	OnRecord(reg Registry, id SpanID, values RecordFields)

	// OnEvent is invoked for each emitted event. scope is the innermost
	// enclosing span, or zero when the event fires outside any span.
	OnEvent(reg Registry, scope SpanID, meta *Metadata, fields RecordFields)
}

// Extensions is keyed storage attached to a live span, letting layers stash
// derived state on the host's entry. Keys follow the context-key idiom:
// use an unexported type to avoid collisions between layers.
type Extensions struct {
	mu sync.Mutex
	m  map[any]any
}

// Get returns the value stored under key, if any.
func (x *Extensions) Get(key any) (any, bool) {
	x.mu.Lock()
	defer x.mu.Unlock()
	v, ok := x.m[key]
	return v, ok
}

// Set stores value under key, replacing any previous value.
func (x *Extensions) Set(key, value any) {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.m == nil {
		x.m = make(map[any]any, 1)
	}
	x.m[key] = value
}
