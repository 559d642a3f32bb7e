// File: instrument/dispatcher.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Span lifecycle and event emission, fanned out to subscribed layers.

package instrument

import (
	"context"
	"sync/atomic"

	"github.com/momentics/tracearc/api"
)

// Dispatcher owns the span registry and delivers span/event notifications
// to its layers. Safe for concurrent use from any number of goroutines.
type Dispatcher struct {
	layers []api.Layer
	reg    *registry
}

// New returns a dispatcher notifying the given layers, in order.
func New(layers ...api.Layer) *Dispatcher {
	return &Dispatcher{layers: layers, reg: newRegistry()}
}

// Span is the producer-side handle of a live span.
type Span struct {
	d     *Dispatcher
	entry *spanEntry
	ended atomic.Bool
}

type ctxKey struct{}

// SpanFromContext returns the span handle carried by ctx, or nil.
func SpanFromContext(ctx context.Context) *Span {
	sp, _ := ctx.Value(ctxKey{}).(*Span)
	return sp
}

// StartSpan opens a span under the span carried by ctx (if any) and
// returns a derived context carrying the new span. The span must be
// closed with End, and must outlive every event emitted under the
// returned context.
func (d *Dispatcher) StartSpan(ctx context.Context, meta *api.Metadata, attrs ...Attr) (context.Context, *Span) {
	var parent api.SpanID
	if sp := SpanFromContext(ctx); sp != nil && !sp.ended.Load() {
		parent = sp.entry.id
	}
	entry := d.reg.insert(meta, parent)
	for _, l := range d.layers {
		l.OnNewSpan(d.reg, entry.id, Attrs(attrs))
	}
	sp := &Span{d: d, entry: entry}
	return context.WithValue(ctx, ctxKey{}, sp), sp
}

// Event emits an event scoped to the span carried by ctx, if any.
func (d *Dispatcher) Event(ctx context.Context, meta *api.Metadata, attrs ...Attr) {
	var scope api.SpanID
	if sp := SpanFromContext(ctx); sp != nil && !sp.ended.Load() {
		scope = sp.entry.id
	}
	for _, l := range d.layers {
		l.OnEvent(d.reg, scope, meta, Attrs(attrs))
	}
}

// ID returns the registry id of the span.
func (s *Span) ID() api.SpanID { return s.entry.id }

// Record attaches deferred fields to the span. No-op after End.
func (s *Span) Record(attrs ...Attr) {
	if s == nil || s.ended.Load() {
		return
	}
	for _, l := range s.d.layers {
		l.OnRecord(s.d.reg, s.entry.id, Attrs(attrs))
	}
}

// End closes the span and drops it from the registry. Archived records
// referencing the span survive through their own links. End is
// idempotent.
func (s *Span) End() {
	if s == nil || !s.ended.CompareAndSwap(false, true) {
		return
	}
	s.d.reg.remove(s.entry.id)
}
