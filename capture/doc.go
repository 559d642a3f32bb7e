// Package capture
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The recording layer: observes a host's span/event stream through the
// api.Layer contract, builds archive records, and publishes events.
//
// Span records are installed into the host's per-span extension storage
// under a copy-on-write protocol: a record is mutated in place only while
// no event or child span has captured it; the first write after sharing
// lands in a clone, leaving earlier captures untouched.
package capture
