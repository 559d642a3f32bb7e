package archive

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/momentics/tracearc/api"
)

func collectDebug(f Field) []any {
	var out []any
	f.WithDebug(func(v any) bool {
		out = append(out, v)
		return true
	})
	return out
}

func TestField_Constructors(t *testing.T) {
	assert.Equal(t, KindInt64, Int64(-3).Kind())
	assert.Equal(t, int64(-3), Int64(-3).Int64Value())

	assert.Equal(t, KindUint64, Uint64(7).Kind())
	assert.Equal(t, uint64(7), Uint64(7).Uint64Value())

	assert.Equal(t, KindBool, Bool(true).Kind())
	assert.True(t, Bool(true).BoolValue())
	assert.False(t, Bool(false).BoolValue())

	assert.Equal(t, KindString, String("hi").Kind())
	assert.Equal(t, "hi", String("hi").Text())

	assert.Equal(t, KindError, ErrorValue(errors.New("boom")).Kind())
	assert.Equal(t, "boom", ErrorValue(errors.New("boom")).Text())

	assert.Equal(t, KindDebug, Debug(struct{ N int }{41}).Kind())
	assert.Equal(t, "{N:41}", Debug(struct{ N int }{41}).Text())
}

func TestField_WithDebugLeaves(t *testing.T) {
	assert.Equal(t, []any{int64(-3)}, collectDebug(Int64(-3)))
	assert.Equal(t, []any{uint64(9)}, collectDebug(Uint64(9)))
	assert.Equal(t, []any{true}, collectDebug(Bool(true)))
	assert.Equal(t, []any{"s"}, collectDebug(String("s")))
	assert.Equal(t, []any{"boom"}, collectDebug(ErrorValue(errors.New("boom"))))
}

func TestField_WithDebugEarlyStop(t *testing.T) {
	ev := newTestEvent()
	ev.Record("n", Int64(1))
	ev.Record("n", Int64(2))
	ev.Record("n", Int64(3))
	f, ok := ev.Field("n")
	assert.True(t, ok)

	var seen []any
	done := f.WithDebug(func(v any) bool {
		seen = append(seen, v)
		return len(seen) < 2
	})
	assert.False(t, done)
	assert.Equal(t, []any{int64(1), int64(2)}, seen)
}

func newTestEvent() *Event {
	meta := &api.Metadata{Name: "event", Target: "test", Level: api.LevelInfo}
	return NewEvent(meta, Now(), nil)
}

func TestRecordingRule_Flattening(t *testing.T) {
	ev := newTestEvent()
	ev.Record("x", Int64(1))
	ev.Record("x", String("two"))
	ev.Record("x", Bool(true))

	f, ok := ev.Field("x")
	assert.True(t, ok)
	assert.Equal(t, KindMultiple, f.Kind())

	// Exactly one entry, three leaves, no nested Multiple.
	assert.Equal(t, 1, ev.NumFields())
	children := f.Values()
	assert.Len(t, children, 3)
	for _, c := range children {
		assert.NotEqual(t, KindMultiple, c.Kind())
	}
	assert.Equal(t, []any{int64(1), "two", true}, collectDebug(f))
}

func TestRecordingRule_InsertionOrder(t *testing.T) {
	ev := newTestEvent()
	ev.Record("b", Int64(1))
	ev.Record("a", Int64(2))
	ev.Record("c", Int64(3))
	ev.Record("a", Int64(4)) // repeat keeps the original position

	var names []string
	ev.Fields(func(name string, _ Field) bool {
		names = append(names, name)
		return true
	})
	assert.Equal(t, []string{"b", "a", "c"}, names)

	a, _ := ev.Field("a")
	assert.Equal(t, []any{int64(2), int64(4)}, collectDebug(a))

	_, ok := ev.Field("missing")
	assert.False(t, ok)
}

func TestSpan_CloneIsIndependent(t *testing.T) {
	parent := NewSpan(&api.Metadata{Name: "p", Target: "t", Level: api.LevelInfo}, nil)
	sp := NewSpan(&api.Metadata{Name: "s", Target: "t", Level: api.LevelInfo}, parent)
	sp.Record("n", Int64(1))
	sp.Record("n", Int64(2))

	clone := sp.Clone()
	clone.Record("n", Int64(3))
	clone.Record("fresh", String("only-in-clone"))

	// The original is untouched by writes to the clone.
	n, _ := sp.Field("n")
	assert.Equal(t, []any{int64(1), int64(2)}, collectDebug(n))
	_, ok := sp.Field("fresh")
	assert.False(t, ok)

	n, _ = clone.Field("n")
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, collectDebug(n))

	// Metadata and parentage are shared, not copied.
	assert.Same(t, sp.Meta(), clone.Meta())
	assert.Same(t, sp.Parent(), clone.Parent())
}
