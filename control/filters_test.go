package control

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/tracearc/api"
	"github.com/momentics/tracearc/archive"
	"github.com/momentics/tracearc/filter"
)

func eventAt(target string, level api.Level) *archive.Event {
	meta := &api.Metadata{Name: "event", Target: target, Level: level}
	return archive.NewEvent(meta, archive.Now(), nil)
}

func TestFilterStore_StartsAdmitAll(t *testing.T) {
	s := NewFilterStore()
	assert.Equal(t, "", s.Directives())
	assert.True(t, s.Admits(eventAt("anything", api.LevelTrace)))
	assert.Empty(t, s.History())
}

func TestFilterStore_SetSwapsFilter(t *testing.T) {
	s := NewFilterStore()
	require.NoError(t, s.Set("app=warn"))
	assert.Equal(t, "app=warn", s.Directives())
	assert.True(t, s.Admits(eventAt("app", api.LevelWarn)))
	assert.False(t, s.Admits(eventAt("app", api.LevelInfo)))
	assert.False(t, s.Admits(eventAt("other", api.LevelError)))
}

func TestFilterStore_BadSetKeepsPrevious(t *testing.T) {
	s := NewFilterStore()
	require.NoError(t, s.Set("app=info"))

	err := s.Set("app=info/bad")
	var perr *filter.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, filter.ReservedSyntax, perr.Kind)

	// Active set, directive string, and history are all unchanged.
	assert.Equal(t, "app=info", s.Directives())
	assert.True(t, s.Admits(eventAt("app", api.LevelInfo)))
	assert.Equal(t, []string{"app=info"}, s.History())

	require.Error(t, s.Set("app=nosuchlevel"))
	assert.Equal(t, "app=info", s.Directives())
}

func TestFilterStore_HistoryBounded(t *testing.T) {
	s := NewFilterStore()
	for i := 0; i < HistorySize+5; i++ {
		require.NoError(t, s.Set(fmt.Sprintf("app-%d", i)))
	}
	h := s.History()
	require.Len(t, h, HistorySize)
	// Oldest first, with the earliest entries evicted.
	assert.Equal(t, "app-5", h[0])
	assert.Equal(t, fmt.Sprintf("app-%d", HistorySize+4), h[len(h)-1])
}

func TestFilterStore_UnchangedSetNotRecorded(t *testing.T) {
	s := NewFilterStore()
	require.NoError(t, s.Set("app=info"))
	require.NoError(t, s.Set("app=info"))
	assert.Equal(t, []string{"app=info"}, s.History())
}

func TestFilterStore_OnReload(t *testing.T) {
	s := NewFilterStore()
	fired := make(chan struct{}, 4)
	s.OnReload(func() { fired <- struct{}{} })

	require.NoError(t, s.Set("app=info"))
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("reload listener not invoked")
	}

	// An unchanged set does not fire, and neither does a failed one.
	require.NoError(t, s.Set("app=info"))
	require.Error(t, s.Set("bad/"))
	select {
	case <-fired:
		t.Fatal("listener fired without a change")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestFilterStore_ConcurrentSetAndAdmits(t *testing.T) {
	s := NewFilterStore()
	ev := eventAt("app", api.LevelInfo)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_ = s.Set(fmt.Sprintf("app=%d", (i+j)%5+1))
			}
		}(i)
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				s.Admits(ev)
				s.Directives()
				s.History()
			}
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, len(s.History()), HistorySize)
}
