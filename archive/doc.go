// Package archive
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// In-memory archive of structured events and the spans enclosing them.
//
// Producers publish immutable Event records through a lock-free queue;
// a single consumer merges them into the archive under a mutex via
// WithEvents. Span records are shared structurally: every event points at
// its innermost enclosing span, and longer chains are walked lazily
// through parent links.
package archive
