// File: internal/concurrency/mpsc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unbounded multi-producer/single-consumer intrusive queue.
// Based on the pattern by Dmitry Vyukov for non-blocking MPSC queues.

package concurrency

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/tracearc/api"
)

type node[T any] struct {
	next atomic.Pointer[node[T]]
	val  T
}

// MPSC is an unbounded lock-free queue. Push is wait-free (a single atomic
// swap) and safe from any goroutine. Pop and Len belong to a single
// consumer; callers must serialize consumer access externally.
//
// Ordering: items pushed by one goroutine are popped in push order; across
// goroutines the queue imposes the total FIFO order of the head swaps.
type MPSC[T any] struct {
	head atomic.Pointer[node[T]] // producer side: most recently pushed node
	size atomic.Int64
	_    cpu.CacheLinePad // keep producer and consumer halves on separate lines
	tail *node[T]         // consumer side: node preceding the next pop
}

var _ api.EventQueue[int] = (*MPSC[int])(nil)

// NewMPSC returns an empty queue.
func NewMPSC[T any]() *MPSC[T] {
	q := &MPSC[T]{}
	stub := new(node[T])
	q.head.Store(stub)
	q.tail = stub
	return q
}

// Push appends val. Never blocks; allocates exactly one node.
func (q *MPSC[T]) Push(val T) {
	n := &node[T]{val: val}
	prev := q.head.Swap(n)
	// The queue is momentarily split until the link below lands; Pop treats
	// the unlinked suffix as not yet published.
	prev.next.Store(n)
	q.size.Add(1)
}

// Pop removes the oldest published item. ok is false when the queue is
// empty or the oldest item is still being linked by its producer; such an
// item surfaces on a later Pop.
func (q *MPSC[T]) Pop() (val T, ok bool) {
	next := q.tail.next.Load()
	if next == nil {
		var zero T
		return zero, false
	}
	q.tail = next
	val = next.val
	var zero T
	next.val = zero // release the item for GC; the node stays as the new stub
	q.size.Add(-1)
	return val, true
}

// Len returns the number of items currently queued. It is a moment-in-time
// hint: producers may push concurrently.
func (q *MPSC[T]) Len() int {
	n := q.size.Load()
	if n < 0 {
		return 0
	}
	return int(n)
}
