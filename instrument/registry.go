// File: instrument/registry.go
// Author: momentics <momentics@gmail.com>
//
// Live-span registry with per-span extension storage.

package instrument

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/tracearc/api"
)

// spanEntry is one live span. The parent pointer is resolved at creation
// and never changes, so cycles are impossible and parent chains stay
// readable after the parent leaves the registry map.
type spanEntry struct {
	id     api.SpanID
	meta   *api.Metadata
	parent *spanEntry
	ext    api.Extensions
}

var _ api.SpanEntry = (*spanEntry)(nil)

func (e *spanEntry) ID() api.SpanID      { return e.id }
func (e *spanEntry) Meta() *api.Metadata { return e.meta }

func (e *spanEntry) Parent() api.SpanEntry {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func (e *spanEntry) Extensions() *api.Extensions { return &e.ext }

// registry indexes live spans by id. Ids are never reused.
type registry struct {
	next  atomic.Uint64
	mu    sync.RWMutex
	spans map[api.SpanID]*spanEntry
}

var _ api.Registry = (*registry)(nil)

func newRegistry() *registry {
	return &registry{spans: make(map[api.SpanID]*spanEntry)}
}

// Span returns the live entry for id, or nil once the span has ended.
func (r *registry) Span(id api.SpanID) api.SpanEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.spans[id]; ok {
		return e
	}
	return nil
}

func (r *registry) insert(meta *api.Metadata, parent api.SpanID) *spanEntry {
	e := &spanEntry{id: api.SpanID(r.next.Add(1)), meta: meta}
	r.mu.Lock()
	if p, ok := r.spans[parent]; ok {
		e.parent = p
	}
	r.spans[e.id] = e
	r.mu.Unlock()
	return e
}

func (r *registry) remove(id api.SpanID) {
	r.mu.Lock()
	delete(r.spans, id)
	r.mu.Unlock()
}
