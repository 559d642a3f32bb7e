// Package concurrency
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free primitives backing the ingest path. The queue here is the only
// piece of the library a producing goroutine ever touches, so it must be
// wait-free on Push and allocation-minimal.
package concurrency
