// File: api/queue.go
// Author: momentics <momentics@gmail.com>
//
// Ingest queue contract for the capture-to-snapshot path.

package api

// EventQueue is a multi-producer, single-consumer queue contract.
// Push must never block and is safe from any goroutine; Pop and Len are
// reserved to a single consumer at a time.
type EventQueue[T any] interface {
	// Push appends an item in FIFO position.
	Push(item T)
	// Pop removes the oldest item; ok is false when the queue is empty.
	Pop() (item T, ok bool)
	// Len returns the current number of items.
	Len() int
}
