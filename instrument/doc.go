// Package instrument
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Reference instrumentation host: a span registry plus a dispatcher that
// fans span and event notifications out to recording layers.
//
// The current span travels in context.Context. Producers open spans with
// StartSpan, record deferred fields on the returned handle, emit events
// with Event, and close spans with End. Any api.Layer can subscribe; the
// capture package provides the archive-recording one.
package instrument
