// File: control/filters.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe store of the active directive set with hot-reload dispatch.

package control

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/tracearc/archive"
	"github.com/momentics/tracearc/filter"
)

// HistorySize caps the number of remembered directive strings.
const HistorySize = 16

// FilterStore holds the active directive set. The zero-value semantics
// come from NewFilterStore: an empty set that admits everything.
type FilterStore struct {
	mu         sync.RWMutex
	directives string
	filter     *filter.EventFilter
	history    *queue.Queue
	listeners  []func()
}

// NewFilterStore returns a store with an empty, admit-all directive set.
func NewFilterStore() *FilterStore {
	empty, _ := filter.NewEventFilter("")
	return &FilterStore{filter: empty, history: queue.New()}
}

// Set compiles and installs a new directive set. On a parse error the
// previous set stays installed and the error is returned. A successful
// swap is recorded in the history and dispatched to reload listeners.
func (s *FilterStore) Set(directives string) error {
	compiled, err := filter.NewEventFilter(directives)
	if err != nil {
		return err
	}
	s.mu.Lock()
	changed := directives != s.directives
	s.directives = directives
	s.filter = compiled
	if changed {
		s.history.Add(directives)
		for s.history.Length() > HistorySize {
			s.history.Remove()
		}
	}
	listeners := append([]func(){}, s.listeners...)
	s.mu.Unlock()
	if changed {
		for _, fn := range listeners {
			go fn()
		}
	}
	return nil
}

// Directives returns the active directive string.
func (s *FilterStore) Directives() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.directives
}

// Admits applies the active filter to an event.
func (s *FilterStore) Admits(ev *archive.Event) bool {
	s.mu.RLock()
	compiled := s.filter
	s.mu.RUnlock()
	return compiled.Admits(ev)
}

// OnReload registers a listener invoked (on its own goroutine) whenever
// the directive set changes.
func (s *FilterStore) OnReload(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// History returns the most recent applied directive strings, oldest
// first, at most HistorySize entries.
func (s *FilterStore) History() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, s.history.Length())
	for i := 0; i < s.history.Length(); i++ {
		out = append(out, s.history.Get(i).(string))
	}
	return out
}
