// File: api/field.go
// Author: momentics <momentics@gmail.com>
//
// Field visitor protocol between instrumentation hosts and recording layers.

package api

// FieldVisitor receives typed field values one at a time. Hosts dispatch
// each recorded value to the arm matching its static type; values with no
// dedicated arm go through VisitAny and are captured by their debug
// rendering.
type FieldVisitor interface {
	VisitInt64(name string, value int64)
	VisitUint64(name string, value uint64)
	VisitBool(name string, value bool)
	VisitString(name string, value string)
	// VisitError captures the display rendering of an error-like value.
	VisitError(name string, err error)
	// VisitAny is the fallback arm for values with no typed counterpart.
	VisitAny(name string, value any)
}

// RecordFields is a set of fields that can replay itself into a visitor.
// Span attributes, deferred span records, and event fields all reach a
// Layer through this interface.
type RecordFields interface {
	Record(v FieldVisitor)
}
