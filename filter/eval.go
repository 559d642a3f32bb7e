// File: filter/eval.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Admission test of a directive set against archived events.

package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/momentics/tracearc/api"
	"github.com/momentics/tracearc/archive"
)

// EventFilter is a compiled directive set. A filter set is a list of
// scoped overrides: each applying directive re-decides admission up to
// its level, later directives overriding earlier ones. An empty set
// admits everything.
type EventFilter struct {
	directives []directive
}

type directive struct {
	target    string
	hasTarget bool
	span      string
	hasSpan   bool
	field     *fieldClause
	level     api.Level
}

type fieldClause struct {
	name     string
	value    string
	hasValue bool
}

// NewEventFilter compiles a directive string. Per directive it keeps the
// target, the first span filter's name, that span's first field filter,
// and the level; empty clauses are treated as absent, and a bare target
// that reads as a level name matches any target. A missing or empty level
// clause defaults to trace, admitting any severity within the directive's
// scope.
func NewEventFilter(directives string) (*EventFilter, error) {
	parsed, err := Parse(directives)
	if err != nil {
		return nil, err
	}
	f := &EventFilter{}
	for _, d := range parsed {
		c := directive{level: api.LevelTrace}
		if d.HasLevel && d.Level != "" {
			lvl, ok := api.ParseLevel(d.Level)
			if !ok {
				return nil, fmt.Errorf("filter: invalid level %q", d.Level)
			}
			c.level = lvl
		}
		if d.Target != "" {
			if _, isLevel := api.ParseLevel(d.Target); !isLevel {
				c.target, c.hasTarget = d.Target, true
			}
		}
		if len(d.Spans) > 0 {
			sd := d.Spans[0]
			if sd.Name != "" {
				c.span, c.hasSpan = sd.Name, true
			}
			if len(sd.Fields) > 0 {
				fd := sd.Fields[0]
				if fd.Name != "" {
					c.field = &fieldClause{
						name:     fd.Name,
						value:    fd.Value,
						hasValue: fd.HasValue && fd.Value != "",
					}
				}
			}
		}
		f.directives = append(f.directives, c)
	}
	return f, nil
}

// Admits reports whether the event passes the directive set.
//
// Each directive applies when all of its present clauses hold: the
// event's target contains the target text, some span on the ancestor
// chain has a name containing the span text, and some field on the event
// or any ancestor span matches the field clause. When a directive
// applies, the decision becomes "admit iff the event's level is within
// the directive's level"; the last applying directive wins. An event no
// directive applies to is rejected (unless the set is empty).
func (f *EventFilter) Admits(ev *archive.Event) bool {
	if len(f.directives) == 0 {
		return true
	}
	admitted := false
	for _, d := range f.directives {
		applies := true
		if d.hasTarget {
			applies = strings.Contains(ev.Meta().Target, d.target)
		}
		if applies && d.hasSpan {
			applies = spanChainHasName(ev, d.span)
		}
		if applies && d.field != nil {
			applies = anyFieldMatches(ev, d.field)
		}
		if applies {
			admitted = ev.Meta().Level.Enabled(d.level)
		}
	}
	return admitted
}

// Excludes is the negation of Admits.
func (f *EventFilter) Excludes(ev *archive.Event) bool {
	return !f.Admits(ev)
}

// spanChainHasName walks the ancestor chain innermost outward.
func spanChainHasName(ev *archive.Event, text string) bool {
	for sp := ev.Span(); sp != nil; sp = sp.Parent() {
		if strings.Contains(sp.Meta().Name, text) {
			return true
		}
	}
	return false
}

// anyFieldMatches scans the event's own fields, then every ancestor
// span's fields. The name clause is a substring match; the value clause,
// when present, is a substring match against the debug rendering of any
// leaf of the field value.
func anyFieldMatches(ev *archive.Event, fc *fieldClause) bool {
	matched := false
	check := func(name string, f archive.Field) bool {
		if fieldMatches(name, f, fc) {
			matched = true
			return false
		}
		return true
	}
	ev.Fields(check)
	for sp := ev.Span(); !matched && sp != nil; sp = sp.Parent() {
		sp.Fields(check)
	}
	return matched
}

func fieldMatches(name string, f archive.Field, fc *fieldClause) bool {
	if !strings.Contains(name, fc.name) {
		return false
	}
	if !fc.hasValue {
		return true
	}
	found := false
	f.WithDebug(func(v any) bool {
		if strings.Contains(debugString(v), fc.value) {
			found = true
			return false
		}
		return true
	})
	return found
}

// debugString renders one leaf the way WithDebug presents it.
func debugString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case bool:
		return strconv.FormatBool(x)
	}
	return fmt.Sprint(v)
}
