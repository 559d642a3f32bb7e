// File: archive/field.go
// Author: momentics <momentics@gmail.com>
//
// Closed value domain for recorded fields.

package archive

import "fmt"

// Kind discriminates the value forms a Field can take.
type Kind uint8

const (
	KindInt64 Kind = iota
	KindUint64
	KindBool
	KindString
	KindError
	KindDebug
	KindMultiple
)

// Field is a single recorded value. The domain is closed: signed and
// unsigned integers, booleans, strings, the display rendering of an error,
// the debug rendering of an arbitrary value, and Multiple for a field name
// recorded more than once.
//
// Invariants: a Multiple is never empty and never directly contains
// another Multiple. Repeated recording flattens (see fieldMap.record).
type Field struct {
	kind Kind
	num  uint64
	str  string
	many []Field
}

// Int64 returns a signed integer field value.
func Int64(v int64) Field { return Field{kind: KindInt64, num: uint64(v)} }

// Uint64 returns an unsigned integer field value.
func Uint64(v uint64) Field { return Field{kind: KindUint64, num: v} }

// Bool returns a boolean field value.
func Bool(v bool) Field {
	var n uint64
	if v {
		n = 1
	}
	return Field{kind: KindBool, num: n}
}

// String returns a string field value.
func String(s string) Field { return Field{kind: KindString, str: s} }

// ErrorValue captures the display rendering of err.
func ErrorValue(err error) Field { return Field{kind: KindError, str: err.Error()} }

// Debug captures the debug rendering of an arbitrary value.
func Debug(v any) Field { return Field{kind: KindDebug, str: fmt.Sprintf("%+v", v)} }

// Kind returns the discriminant of the field value.
func (f Field) Kind() Kind { return f.kind }

// Int64Value returns the payload of a KindInt64 field.
func (f Field) Int64Value() int64 { return int64(f.num) }

// Uint64Value returns the payload of a KindUint64 field.
func (f Field) Uint64Value() uint64 { return f.num }

// BoolValue returns the payload of a KindBool field.
func (f Field) BoolValue() bool { return f.num != 0 }

// Text returns the payload of a KindString field, or the captured
// rendering of a KindError or KindDebug field.
func (f Field) Text() string { return f.str }

// Values returns the children of a KindMultiple field. The returned slice
// must not be modified.
func (f Field) Values() []Field { return f.many }

// WithDebug presents each contained leaf to visit exactly once, in recorded
// order. Children of a Multiple are visited individually; a Multiple itself
// is never presented. Integer and boolean leaves arrive as their native
// types, string leaves as the contained string, error and debug leaves as
// their captured text. Returning false stops the walk early; WithDebug
// reports whether the walk ran to completion.
func (f Field) WithDebug(visit func(value any) bool) bool {
	switch f.kind {
	case KindInt64:
		return visit(int64(f.num))
	case KindUint64:
		return visit(f.num)
	case KindBool:
		return visit(f.num != 0)
	case KindString, KindError, KindDebug:
		return visit(f.str)
	case KindMultiple:
		for _, child := range f.many {
			if !child.WithDebug(visit) {
				return false
			}
		}
		return true
	}
	return true
}

// appended folds v into f under the recording rule: an existing Multiple
// grows by one child, anything else becomes Multiple([f, v]). A fresh
// backing slice is allocated on every fold so that records cloned for
// copy-on-write never share mutable storage.
func (f Field) appended(v Field) Field {
	if f.kind == KindMultiple {
		many := make([]Field, 0, len(f.many)+1)
		many = append(many, f.many...)
		many = append(many, v)
		return Field{kind: KindMultiple, many: many}
	}
	return Field{kind: KindMultiple, many: []Field{f, v}}
}
