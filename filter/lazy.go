// File: filter/lazy.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Streaming zero-copy scanners for the directive grammar:
//
//	directives := directive ("," directive)*
//	directive  := target ("[" spans "]")? ("=" level)?
//	spans      := span ("," span)*
//	span       := name ("{" fields "}")?
//	fields     := field ("," field)*
//	field      := name ("=" value)?
//
// Every yielded string is a sub-slice of the scanned input. An error
// latches the scanner: its remaining input is cleared and further Scan
// calls return false.

package filter

import "strings"

// reserved bytes cause an immediate ReservedSyntax error at any depth.
const reserved = `"/`

// findSyntax returns the index of the first structural byte in s and the
// byte itself, or (len(s), 0) when none remains.
func findSyntax(s string) (int, byte) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', ']', '{', '}', '=', ',':
			return i, s[i]
		}
	}
	return len(s), 0
}

// Filters returns a scanner over the top-level directives of the input.
// Empty input scans zero directives.
func Filters(directives string) *FilterScanner {
	return &FilterScanner{rest: directives}
}

// Filter is a single directive, target[span{field=value}]=level. The span
// block, when present, is not parsed or validated until scanned.
type Filter struct {
	// Target is the target clause; may be empty.
	Target string
	// Spans scans the bracketed span filters; nil when no block is given.
	Spans *SpanScanner
	// Level is the level clause; meaningful only when HasLevel is true.
	// An explicit "=" with nothing after it yields HasLevel with an empty
	// Level.
	Level    string
	HasLevel bool
}

// FilterScanner yields directives one at a time in the manner of
// bufio.Scanner: Scan, then Filter, then check Err after the final Scan.
type FilterScanner struct {
	rest string
	cur  Filter
	err  error
}

// Scan advances to the next directive. It returns false at the end of the
// input or on error; Err distinguishes the two.
func (s *FilterScanner) Scan() bool {
	if s.err != nil || s.rest == "" {
		return false
	}
	if strings.ContainsAny(s.rest, reserved) {
		s.rest = ""
		s.err = &ParseError{Kind: ReservedSyntax}
		return false
	}
	s.cur = Filter{}
	return s.target() && s.spans() && s.level() && s.comma()
}

// Filter returns the directive produced by the last successful Scan.
func (s *FilterScanner) Filter() Filter { return s.cur }

// Err returns the error that terminated scanning, if any.
func (s *FilterScanner) Err() error { return s.err }

func (s *FilterScanner) fail() bool {
	s.rest = ""
	s.err = &ParseError{Kind: BadSyntax}
	return false
}

// target ends at '[', '=', ',' or end of input; a closing bracket or any
// brace here is an error.
func (s *FilterScanner) target() bool {
	i, b := findSyntax(s.rest)
	switch b {
	case ']', '{', '}':
		return s.fail()
	}
	s.cur.Target = s.rest[:i]
	s.rest = s.rest[i:]
	return true
}

// spans slices out the "[...]" block without validating its contents; the
// block must close before the end of the input.
func (s *FilterScanner) spans() bool {
	if !strings.HasPrefix(s.rest, "[") {
		return true
	}
	s.rest = s.rest[1:]
	i := strings.IndexByte(s.rest, ']')
	if i < 0 {
		return s.fail()
	}
	s.cur.Spans = &SpanScanner{rest: s.rest[:i]}
	s.rest = s.rest[i+1:]
	return true
}

// level, when introduced by '=', runs to ',' or end; any bracket, brace,
// or second '=' inside it is an error.
func (s *FilterScanner) level() bool {
	if s.rest == "" || s.rest[0] == ',' {
		return true
	}
	if s.rest[0] != '=' {
		return s.fail()
	}
	s.rest = s.rest[1:]
	i, b := findSyntax(s.rest)
	switch b {
	case '[', ']', '{', '}', '=':
		return s.fail()
	}
	s.cur.Level = s.rest[:i]
	s.cur.HasLevel = true
	s.rest = s.rest[i:]
	return true
}

// comma consumes exactly one separating ',' unless at end of input.
func (s *FilterScanner) comma() bool {
	if s.rest == "" {
		return true
	}
	if s.rest[0] == ',' {
		s.rest = s.rest[1:]
		return true
	}
	return s.fail()
}

// SpanFilter is a single span filter, span{field=value}. The field block,
// when present, is not parsed or validated until scanned.
type SpanFilter struct {
	// Name is the span name clause; may be empty.
	Name string
	// Fields scans the braced field filters; nil when no block is given.
	Fields *FieldScanner
}

// SpanScanner yields the span filters inside one directive's "[...]"
// block.
type SpanScanner struct {
	rest string
	cur  SpanFilter
	err  error
}

// Scan advances to the next span filter.
func (s *SpanScanner) Scan() bool {
	if s.err != nil || s.rest == "" {
		return false
	}
	if strings.ContainsAny(s.rest, reserved) {
		s.rest = ""
		s.err = &ParseError{Kind: ReservedSyntax}
		return false
	}
	s.cur = SpanFilter{}
	return s.name() && s.fields() && s.comma()
}

// Span returns the span filter produced by the last successful Scan.
func (s *SpanScanner) Span() SpanFilter { return s.cur }

// Err returns the error that terminated scanning, if any.
func (s *SpanScanner) Err() error { return s.err }

func (s *SpanScanner) fail() bool {
	s.rest = ""
	s.err = &ParseError{Kind: BadSyntax}
	return false
}

// name ends at '{', ',' or end; brackets, a closing brace, or '=' here
// are errors.
func (s *SpanScanner) name() bool {
	i, b := findSyntax(s.rest)
	switch b {
	case '[', ']', '}', '=':
		return s.fail()
	}
	s.cur.Name = s.rest[:i]
	s.rest = s.rest[i:]
	return true
}

// fields slices out the "{...}" block; it must close before the end of
// the block.
func (s *SpanScanner) fields() bool {
	if !strings.HasPrefix(s.rest, "{") {
		return true
	}
	s.rest = s.rest[1:]
	i := strings.IndexByte(s.rest, '}')
	if i < 0 {
		return s.fail()
	}
	s.cur.Fields = &FieldScanner{rest: s.rest[:i]}
	s.rest = s.rest[i+1:]
	return true
}

func (s *SpanScanner) comma() bool {
	if s.rest == "" {
		return true
	}
	if s.rest[0] == ',' {
		s.rest = s.rest[1:]
		return true
	}
	return s.fail()
}

// FieldFilter is a single field filter, field=value.
type FieldFilter struct {
	// Name is the field name clause; may be empty.
	Name string
	// Value is the value clause; meaningful only when HasValue is true.
	Value    string
	HasValue bool
}

// FieldScanner yields the field filters inside one span filter's "{...}"
// block.
type FieldScanner struct {
	rest string
	cur  FieldFilter
	err  error
}

// Scan advances to the next field filter.
func (s *FieldScanner) Scan() bool {
	if s.err != nil || s.rest == "" {
		return false
	}
	if strings.ContainsAny(s.rest, reserved) {
		s.rest = ""
		s.err = &ParseError{Kind: ReservedSyntax}
		return false
	}
	s.cur = FieldFilter{}
	return s.name() && s.value() && s.comma()
}

// Field returns the field filter produced by the last successful Scan.
func (s *FieldScanner) Field() FieldFilter { return s.cur }

// Err returns the error that terminated scanning, if any.
func (s *FieldScanner) Err() error { return s.err }

func (s *FieldScanner) fail() bool {
	s.rest = ""
	s.err = &ParseError{Kind: BadSyntax}
	return false
}

// name ends at '=', ',' or end; any bracket or brace here is an error.
func (s *FieldScanner) name() bool {
	i, b := findSyntax(s.rest)
	switch b {
	case '[', ']', '{', '}':
		return s.fail()
	}
	s.cur.Name = s.rest[:i]
	s.rest = s.rest[i:]
	return true
}

// value, when introduced by '=', runs to ',' or end.
func (s *FieldScanner) value() bool {
	if !strings.HasPrefix(s.rest, "=") {
		return true
	}
	s.rest = s.rest[1:]
	i, b := findSyntax(s.rest)
	switch b {
	case '[', ']', '{', '}', '=':
		return s.fail()
	}
	s.cur.Value = s.rest[:i]
	s.cur.HasValue = true
	s.rest = s.rest[i:]
	return true
}

func (s *FieldScanner) comma() bool {
	if s.rest == "" {
		return true
	}
	if s.rest[0] == ',' {
		s.rest = s.rest[1:]
		return true
	}
	return s.fail()
}
