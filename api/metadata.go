// File: api/metadata.go
// Author: momentics <momentics@gmail.com>
//
// Static callsite metadata shared by spans and events.

package api

// Metadata describes a single instrumentation callsite. Instances are
// expected to be declared once (typically as package-level variables) and
// shared by pointer; the archive stores the pointer and never copies or
// mutates the value.
type Metadata struct {
	// Name identifies the callsite, e.g. a span or event name.
	Name string
	// Target is the dotted module-like path of the instrumented component,
	// e.g. "tracearc::demo::worker".
	Target string
	// Level is the severity assigned at the callsite.
	Level Level
}
