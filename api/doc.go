// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contracts shared by the tracearc library: severity levels, callsite
// metadata, the field visitor protocol, the recording layer interface,
// and the ingest queue contract.
//
// The api package depends only on the standard library. Implementations
// live in archive, capture, instrument, and internal/concurrency.
package api
