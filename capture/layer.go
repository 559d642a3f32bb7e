// File: capture/layer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Layer callbacks: new span, deferred record, event.

package capture

import (
	"fmt"
	"sync"

	"github.com/momentics/tracearc/api"
	"github.com/momentics/tracearc/archive"
)

// Layer records spans and events into an Archive. It satisfies api.Layer
// and is safe for concurrent use from any number of producer goroutines.
type Layer struct {
	archive *archive.Archive
}

var _ api.Layer = (*Layer)(nil)

// NewLayer returns a recording layer publishing into a. A nil a selects
// the package default archive.
func NewLayer(a *archive.Archive) *Layer {
	if a == nil {
		a = archive.Default
	}
	return &Layer{archive: a}
}

// cellKey keys the layer's extension slot on a host span entry.
type cellKey struct{}

// spanCell guards the archived record of one live span together with its
// sharing state. The cell pointer is installed once and never replaced;
// all mutation goes through the cell mutex.
type spanCell struct {
	mu     sync.Mutex
	rec    *archive.Span
	shared bool
}

// snapshot hands out the current record for sharing. Any later write must
// clone first.
func (c *spanCell) snapshot() *archive.Span {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shared = true
	return c.rec
}

// record applies deferred fields. A shared record is cloned before the
// write so earlier captures keep the pre-write state.
func (c *spanCell) record(values api.RecordFields) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.shared {
		c.rec = c.rec.Clone()
		c.shared = false
	}
	values.Record(visitor{c.rec})
}

func cellOf(entry api.SpanEntry) *spanCell {
	if v, ok := entry.Extensions().Get(cellKey{}); ok {
		return v.(*spanCell)
	}
	return nil
}

// OnNewSpan builds the record for a freshly created span: metadata from
// the entry, parent link shared from the parent entry's record, initial
// attributes applied through the visitor.
func (l *Layer) OnNewSpan(reg api.Registry, id api.SpanID, attrs api.RecordFields) {
	entry := mustSpan(reg, id)
	var parent *archive.Span
	if p := entry.Parent(); p != nil {
		if pc := cellOf(p); pc != nil {
			parent = pc.snapshot()
		}
	}
	rec := archive.NewSpan(entry.Meta(), parent)
	attrs.Record(visitor{rec})
	entry.Extensions().Set(cellKey{}, &spanCell{rec: rec})
}

// OnRecord applies deferred fields to the span's record, cloning on write
// if the record has been shared. A missing cell should not occur (the host
// delivers OnNewSpan first); it is rebuilt from the entry rather than
// dropped so late fields are not lost.
func (l *Layer) OnRecord(reg api.Registry, id api.SpanID, values api.RecordFields) {
	entry := mustSpan(reg, id)
	cell := cellOf(entry)
	if cell == nil {
		l.OnNewSpan(reg, id, values)
		return
	}
	cell.record(values)
}

// OnEvent builds, populates, and publishes an event record. scope zero
// means the event fired outside any span.
func (l *Layer) OnEvent(reg api.Registry, scope api.SpanID, meta *api.Metadata, fields api.RecordFields) {
	var enclosing *archive.Span
	if scope != 0 {
		if c := cellOf(mustSpan(reg, scope)); c != nil {
			enclosing = c.snapshot()
		}
	}
	ev := archive.NewEvent(meta, archive.Now(), enclosing)
	fields.Record(visitor{ev})
	l.archive.Publish(ev)
}

// mustSpan asserts the host retained the span for the callback.
func mustSpan(reg api.Registry, id api.SpanID) api.SpanEntry {
	entry := reg.Span(id)
	if entry == nil {
		panic(fmt.Sprintf("capture: registry has no entry for span %d; this is a bug in the host", id))
	}
	return entry
}
