// Package filter
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Directive-language parser and event admission filter.
//
// The directive grammar is a comma-separated stream of
// target[span{field=value}]=level clauses. Parsing is zero-copy and lazy:
// the scanners yield sub-slices of the input and validate only what is
// pulled, in one pass with single-byte lookahead. Parse materializes all
// three levels eagerly; EventFilter evaluates a directive set against
// archived events.
package filter
