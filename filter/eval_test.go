package filter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/tracearc/api"
	"github.com/momentics/tracearc/archive"
)

func eventAt(target string, level api.Level, scope *archive.Span) *archive.Event {
	meta := &api.Metadata{Name: "event", Target: target, Level: level}
	return archive.NewEvent(meta, archive.Now(), scope)
}

func namedSpan(name string, parent *archive.Span) *archive.Span {
	meta := &api.Metadata{Name: name, Target: "test::" + name, Level: api.LevelInfo}
	return archive.NewSpan(meta, parent)
}

func mustFilter(t *testing.T, directives string) *EventFilter {
	t.Helper()
	f, err := NewEventFilter(directives)
	require.NoError(t, err)
	return f
}

func TestEventFilter_EmptySetAdmitsAll(t *testing.T) {
	f := mustFilter(t, "")
	assert.True(t, f.Admits(eventAt("anything", api.LevelTrace, nil)))
	assert.True(t, f.Admits(eventAt("", api.LevelError, nil)))
	assert.False(t, f.Excludes(eventAt("x", api.LevelDebug, nil)))
}

func TestEventFilter_TargetAndLevel(t *testing.T) {
	f := mustFilter(t, "tokio::net=info")

	// Target substring plus severity within the ceiling.
	assert.True(t, f.Admits(eventAt("tokio::net", api.LevelInfo, nil)))
	assert.True(t, f.Admits(eventAt("tokio::net::tcp", api.LevelError, nil)))

	// Severity below the ceiling.
	assert.False(t, f.Admits(eventAt("tokio::net", api.LevelDebug, nil)))
	assert.False(t, f.Admits(eventAt("tokio::net", api.LevelTrace, nil)))

	// Directive does not apply: rejected.
	assert.False(t, f.Admits(eventAt("hyper::client", api.LevelError, nil)))
}

func TestEventFilter_MissingLevelMeansTrace(t *testing.T) {
	f := mustFilter(t, "my_app")
	assert.True(t, f.Admits(eventAt("my_app::db", api.LevelTrace, nil)))
	assert.True(t, f.Admits(eventAt("my_app::db", api.LevelError, nil)))
	assert.False(t, f.Admits(eventAt("other", api.LevelError, nil)))

	// Explicit "=" with an empty level token behaves the same.
	f = mustFilter(t, "my_app=")
	assert.True(t, f.Admits(eventAt("my_app", api.LevelTrace, nil)))
}

func TestEventFilter_OffAdmitsNothing(t *testing.T) {
	f := mustFilter(t, "noisy=off")
	assert.False(t, f.Admits(eventAt("noisy", api.LevelError, nil)))
	assert.False(t, f.Admits(eventAt("noisy", api.LevelTrace, nil)))
}

func TestEventFilter_LaterDirectiveWins(t *testing.T) {
	// Both directives apply to "app::db"; the later one decides.
	f := mustFilter(t, "app=trace,app::db=warn")
	assert.False(t, f.Admits(eventAt("app::db", api.LevelInfo, nil)))
	assert.True(t, f.Admits(eventAt("app::db", api.LevelWarn, nil)))

	// Only the first applies elsewhere under "app".
	assert.True(t, f.Admits(eventAt("app::http", api.LevelTrace, nil)))

	// Reversed order, reversed outcome.
	f = mustFilter(t, "app::db=warn,app=trace")
	assert.True(t, f.Admits(eventAt("app::db", api.LevelInfo, nil)))
}

func TestEventFilter_SpanClause(t *testing.T) {
	root := namedSpan("conn", nil)
	inner := namedSpan("request", root)

	f := mustFilter(t, "[request]")
	assert.True(t, f.Admits(eventAt("any", api.LevelTrace, inner)))
	assert.False(t, f.Admits(eventAt("any", api.LevelTrace, nil)))
	assert.False(t, f.Admits(eventAt("any", api.LevelTrace, namedSpan("other", nil))))

	// The whole ancestor chain is searched, innermost outward.
	f = mustFilter(t, "[conn]")
	assert.True(t, f.Admits(eventAt("any", api.LevelTrace, inner)))

	// Substring match on the span name.
	f = mustFilter(t, "[equ]")
	assert.True(t, f.Admits(eventAt("any", api.LevelTrace, inner)))
}

func TestEventFilter_FieldClause(t *testing.T) {
	sp := namedSpan("request", nil)
	sp.Record("path", archive.String("/api/users"))

	ev := eventAt("app", api.LevelInfo, sp)
	ev.Record("status", archive.Uint64(200))

	// Field on the event itself.
	f := mustFilter(t, "[{status}]")
	assert.True(t, f.Admits(ev))

	// Field on an ancestor span.
	f = mustFilter(t, "[{path}]")
	assert.True(t, f.Admits(ev))

	// Value clause against the debug rendering.
	f = mustFilter(t, "[{path=/api}]")
	assert.True(t, f.Admits(ev))
	f = mustFilter(t, "[{path=/admin}]")
	assert.False(t, f.Admits(ev))
	f = mustFilter(t, "[{status=200}]")
	assert.True(t, f.Admits(ev))

	// No matching field name.
	f = mustFilter(t, "[{user}]")
	assert.False(t, f.Admits(ev))
}

func TestEventFilter_FieldClauseMultiple(t *testing.T) {
	ev := eventAt("app", api.LevelInfo, nil)
	ev.Record("try", archive.ErrorValue(errors.New("timeout")))
	ev.Record("try", archive.ErrorValue(errors.New("refused")))

	// Any leaf of a Multiple can satisfy the value clause.
	assert.True(t, mustFilter(t, "[{try=refused}]").Admits(ev))
	assert.True(t, mustFilter(t, "[{try=timeout}]").Admits(ev))
	assert.False(t, mustFilter(t, "[{try=denied}]").Admits(ev))
}

func TestEventFilter_ConjunctionOfClauses(t *testing.T) {
	sp := namedSpan("request", nil)
	ev := eventAt("app::http", api.LevelInfo, sp)
	ev.Record("status", archive.Uint64(500))

	f := mustFilter(t, "app[request{status=500}]=info")
	assert.True(t, f.Admits(ev))

	// Any failing clause makes the directive inapplicable.
	assert.False(t, f.Admits(eventAt("other", api.LevelInfo, sp)))
	f = mustFilter(t, "app[session{status=500}]=info")
	assert.False(t, f.Admits(ev))
	f = mustFilter(t, "app[request{status=404}]=info")
	assert.False(t, f.Admits(ev))
}

func TestEventFilter_BareLevelNameTarget(t *testing.T) {
	// A bare target reading as a level name matches any target, with the
	// level still defaulting to trace.
	f := mustFilter(t, "info")
	assert.True(t, f.Admits(eventAt("whatever", api.LevelTrace, nil)))
	assert.True(t, f.Admits(eventAt("", api.LevelError, nil)))
}

func TestEventFilter_CompileErrors(t *testing.T) {
	_, err := NewEventFilter("a=nosuchlevel")
	require.Error(t, err)

	_, err = NewEventFilter("[a[a]")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, BadSyntax, perr.Kind)

	_, err = NewEventFilter("a/b")
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ReservedSyntax, perr.Kind)
}

func TestEventFilter_LevelTokens(t *testing.T) {
	// Names are case-insensitive; digits 0..5 are accepted.
	for _, directives := range []string{"a=WARN", "a=Warn", "a=2"} {
		f := mustFilter(t, directives)
		assert.True(t, f.Admits(eventAt("a", api.LevelWarn, nil)), directives)
		assert.False(t, f.Admits(eventAt("a", api.LevelInfo, nil)), directives)
	}
}
