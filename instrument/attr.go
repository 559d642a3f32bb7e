// File: instrument/attr.go
// Author: momentics <momentics@gmail.com>
//
// Typed attributes and their replay into the field visitor protocol.

package instrument

import "github.com/momentics/tracearc/api"

type attrKind uint8

const (
	attrInt64 attrKind = iota
	attrUint64
	attrBool
	attrString
	attrError
	attrAny
)

// Attr is one named value attached to a span or event at the callsite.
type Attr struct {
	Name string
	kind attrKind
	i    int64
	u    uint64
	b    bool
	s    string
	err  error
	val  any
}

// Int64 attaches a signed integer.
func Int64(name string, v int64) Attr { return Attr{Name: name, kind: attrInt64, i: v} }

// Uint64 attaches an unsigned integer.
func Uint64(name string, v uint64) Attr { return Attr{Name: name, kind: attrUint64, u: v} }

// Bool attaches a boolean.
func Bool(name string, v bool) Attr { return Attr{Name: name, kind: attrBool, b: v} }

// String attaches a string.
func String(name string, v string) Attr { return Attr{Name: name, kind: attrString, s: v} }

// Err attaches an error-like value, captured by its display rendering.
func Err(name string, err error) Attr { return Attr{Name: name, kind: attrError, err: err} }

// Any attaches an arbitrary value, captured by its debug rendering.
func Any(name string, v any) Attr { return Attr{Name: name, kind: attrAny, val: v} }

// Attrs replays a set of attributes into a field visitor, in order.
type Attrs []Attr

var _ api.RecordFields = Attrs(nil)

// Record dispatches each attribute to the visitor arm matching its type.
func (as Attrs) Record(v api.FieldVisitor) {
	for _, a := range as {
		switch a.kind {
		case attrInt64:
			v.VisitInt64(a.Name, a.i)
		case attrUint64:
			v.VisitUint64(a.Name, a.u)
		case attrBool:
			v.VisitBool(a.Name, a.b)
		case attrString:
			v.VisitString(a.Name, a.s)
		case attrError:
			v.VisitError(a.Name, a.err)
		case attrAny:
			v.VisitAny(a.Name, a.val)
		}
	}
}
