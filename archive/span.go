// File: archive/span.go
// Author: momentics <momentics@gmail.com>
//
// Immutable, shareable span records.

package archive

import "github.com/momentics/tracearc/api"

// Span is the archived record of one span: its static metadata, recorded
// fields, and a link to the record of its parent span. Once a Span is
// shared (referenced by an event or a child span) it must be treated as
// immutable; capture layers clone before writing to a shared record.
type Span struct {
	meta   *api.Metadata
	fields fieldMap
	parent *Span
}

// NewSpan returns a span record with no fields. Intended for capture
// layers during construction.
func NewSpan(meta *api.Metadata, parent *Span) *Span {
	return &Span{meta: meta, parent: parent}
}

// Meta returns the static metadata describing this span.
func (s *Span) Meta() *api.Metadata { return s.meta }

// Parent returns the record of the enclosing span, or nil at the root.
func (s *Span) Parent() *Span { return s.parent }

// Field returns the recorded field with the given name.
func (s *Span) Field(name string) (Field, bool) { return s.fields.get(name) }

// Fields calls fn for every recorded field in insertion order until fn
// returns false.
func (s *Span) Fields(fn func(name string, f Field) bool) { s.fields.each(fn) }

// NumFields returns the number of distinct field names recorded.
func (s *Span) NumFields() int { return s.fields.len() }

// Record applies the recording rule for name/value. Construction-time
// only: the caller must hold the record exclusively.
func (s *Span) Record(name string, f Field) { s.fields.record(name, f) }

// Clone returns an independent copy sharing the same metadata and parent
// link. Used for copy-on-write when a shared record receives more fields.
func (s *Span) Clone() *Span {
	return &Span{meta: s.meta, fields: s.fields.clone(), parent: s.parent}
}
