// File: archive/archive.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free publish, mutex-guarded snapshot.

package archive

import (
	"sync"

	"github.com/momentics/tracearc/internal/concurrency"
)

// Archive accumulates published events for the lifetime of the process.
// Publish is wait-free and safe from any goroutine; WithEvents is the
// single-consumer snapshot path.
type Archive struct {
	queue *concurrency.MPSC[*Event]

	mu     sync.Mutex
	events []*Event
}

// New returns an empty archive.
func New() *Archive {
	return &Archive{queue: concurrency.NewMPSC[*Event]()}
}

// Publish enqueues an event for the next snapshot. The event must be fully
// populated and is never mutated afterward.
func (a *Archive) Publish(e *Event) {
	a.queue.Push(e)
}

// WithEvents drains pending events into the archive vector, in queue FIFO
// order, and runs fn with exclusive access to it. fn may inspect, filter,
// or truncate the vector in place.
//
// Not reentrancy safe: calling WithEvents from inside fn (directly, or
// through anything that snapshots) deadlocks. Producers on other
// goroutines keep publishing while fn runs; their events surface on the
// next call.
func (a *Archive) WithEvents(fn func(events *[]*Event)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if n := a.queue.Len(); cap(a.events)-len(a.events) < n {
		grown := make([]*Event, len(a.events), len(a.events)+n)
		copy(grown, a.events)
		a.events = grown
	}
	for {
		e, ok := a.queue.Pop()
		if !ok {
			break
		}
		a.events = append(a.events, e)
	}
	fn(&a.events)
}

// Default is the process-wide archive used by the package-level helpers
// and the facade defaults.
var Default = New()

// WithEvents runs fn against the Default archive. See Archive.WithEvents
// for the contract, including the reentrancy hazard.
func WithEvents(fn func(events *[]*Event)) {
	Default.WithEvents(fn)
}
