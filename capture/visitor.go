// File: capture/visitor.go
// Author: momentics <momentics@gmail.com>
//
// Typed visitor dispatch into the archive field domain.

package capture

import (
	"github.com/momentics/tracearc/api"
	"github.com/momentics/tracearc/archive"
)

// recorder is satisfied by *archive.Span and *archive.Event.
type recorder interface {
	Record(name string, f archive.Field)
}

// visitor maps each typed visit arm onto the corresponding Field variant.
// Error values capture their display form, fallback values their debug
// form.
type visitor struct {
	rec recorder
}

var _ api.FieldVisitor = visitor{}

func (v visitor) VisitInt64(name string, value int64) {
	v.rec.Record(name, archive.Int64(value))
}

func (v visitor) VisitUint64(name string, value uint64) {
	v.rec.Record(name, archive.Uint64(value))
}

func (v visitor) VisitBool(name string, value bool) {
	v.rec.Record(name, archive.Bool(value))
}

func (v visitor) VisitString(name string, value string) {
	v.rec.Record(name, archive.String(value))
}

func (v visitor) VisitError(name string, err error) {
	v.rec.Record(name, archive.ErrorValue(err))
}

func (v visitor) VisitAny(name string, value any) {
	v.rec.Record(name, archive.Debug(value))
}
