// File: filter/errors.go
// Author: momentics <momentics@gmail.com>
//
// Parse error taxonomy.

package filter

// ErrorKind discriminates the two ways a directive string can be invalid.
type ErrorKind uint8

const (
	// BadSyntax marks a structural grammar violation: a structural byte
	// where the grammar does not allow one, or an unterminated bracket.
	BadSyntax ErrorKind = iota
	// ReservedSyntax marks the presence of '"' or '/' anywhere in the
	// input. Both bytes are reserved for future grammar extensions.
	ReservedSyntax
)

// ParseError is returned by the scanners and by Parse. After any
// ParseError the owning scanner terminates.
type ParseError struct {
	Kind ErrorKind
}

func (e *ParseError) Error() string {
	if e.Kind == ReservedSyntax {
		return `filter: directives must not contain '"' or '/'`
	}
	return "filter: directive has invalid syntax"
}
