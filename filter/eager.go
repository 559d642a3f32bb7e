// File: filter/eager.go
// Author: momentics <momentics@gmail.com>
//
// Eager, fully-materialized form of the lazy scanners.

package filter

// Directive is a fully parsed directive. Strings still alias the parsed
// input.
type Directive struct {
	Target string
	// Spans holds the span filters of the "[...]" block; HasSpans
	// distinguishes an absent block from an empty one.
	Spans    []SpanDirective
	HasSpans bool
	// Level is the "=level" clause; HasLevel distinguishes an absent
	// clause from "=" with an empty token.
	Level    string
	HasLevel bool
}

// SpanDirective is a fully parsed span filter.
type SpanDirective struct {
	Name      string
	Fields    []FieldDirective
	HasFields bool
}

// FieldDirective is a fully parsed field filter.
type FieldDirective struct {
	Name     string
	Value    string
	HasValue bool
}

// Parse materializes every directive, span filter, and field filter of
// the input. The first error at any depth is returned; empty input yields
// zero directives.
func Parse(directives string) ([]Directive, error) {
	fs := Filters(directives)
	var out []Directive
	for fs.Scan() {
		f := fs.Filter()
		d := Directive{Target: f.Target, Level: f.Level, HasLevel: f.HasLevel}
		if f.Spans != nil {
			d.HasSpans = true
			for f.Spans.Scan() {
				sf := f.Spans.Span()
				sd := SpanDirective{Name: sf.Name}
				if sf.Fields != nil {
					sd.HasFields = true
					for sf.Fields.Scan() {
						sd.Fields = append(sd.Fields, FieldDirective(sf.Fields.Field()))
					}
					if err := sf.Fields.Err(); err != nil {
						return nil, err
					}
				}
				d.Spans = append(d.Spans, sd)
			}
			if err := f.Spans.Err(); err != nil {
				return nil, err
			}
		}
		out = append(out, d)
	}
	if err := fs.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
