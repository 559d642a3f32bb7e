// File: archive/event.go
// Author: momentics <momentics@gmail.com>
//
// Immutable event records.

package archive

import (
	"time"

	"github.com/momentics/tracearc/api"
)

// Event is the archived record of a single emission: static metadata, the
// local wall-clock timestamp, recorded fields, and the record of the
// innermost enclosing span. Events are immutable after publication.
type Event struct {
	meta      *api.Metadata
	timestamp time.Time
	fields    fieldMap
	span      *Span
}

// NewEvent returns an event record with no fields, stamped with ts.
// Intended for capture layers during construction; once published through
// an Archive the record must not be modified.
func NewEvent(meta *api.Metadata, ts time.Time, scope *Span) *Event {
	return &Event{meta: meta, timestamp: ts, span: scope}
}

// Now returns the local wall-clock time at millisecond precision, the
// resolution events are stamped with.
func Now() time.Time {
	return time.Now().Local().Truncate(time.Millisecond)
}

// Meta returns the static metadata describing this event.
func (e *Event) Meta() *api.Metadata { return e.meta }

// Timestamp returns the time at which the event fired.
func (e *Event) Timestamp() time.Time { return e.timestamp }

// Field returns the recorded field with the given name.
func (e *Event) Field(name string) (Field, bool) { return e.fields.get(name) }

// Fields calls fn for every recorded field in insertion order until fn
// returns false.
func (e *Event) Fields(fn func(name string, f Field) bool) { e.fields.each(fn) }

// NumFields returns the number of distinct field names recorded.
func (e *Event) NumFields() int { return e.fields.len() }

// Span returns the record of the innermost enclosing span, or nil when
// the event fired outside any span.
func (e *Event) Span() *Span { return e.span }

// Record applies the recording rule for name/value. Construction-time
// only.
func (e *Event) Record(name string, f Field) { e.fields.record(name, f) }
