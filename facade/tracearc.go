// File: facade/tracearc.go
// Unified facade layer for the tracearc library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the TraceArc struct, which aggregates the core
// components of the library behind a single facade: the event archive,
// the recording layer, the instrumentation dispatcher, and the runtime
// filter store. The facade exposes snapshot access, filtered snapshot
// access, and a zap bridge constructor.

package facade

import (
	"log"

	"go.uber.org/zap/zapcore"

	"github.com/momentics/tracearc/adapters"
	"github.com/momentics/tracearc/api"
	"github.com/momentics/tracearc/archive"
	"github.com/momentics/tracearc/capture"
	"github.com/momentics/tracearc/control"
	"github.com/momentics/tracearc/instrument"
)

// Config holds parameters fixed at construction. The directive set is the
// only runtime-mutable piece, via Filters().Set.
type Config struct {
	// Archive receives every recorded event; nil selects archive.Default.
	Archive *archive.Archive
	// Filter is the initial directive set, e.g. "my_app[request]=info".
	// An invalid set is logged and replaced by the empty, admit-all set.
	Filter string
	// ExtraLayers subscribe to the span/event stream alongside the
	// recording layer.
	ExtraLayers []api.Layer
}

// DefaultConfig returns default configuration values: the process-wide
// archive, no filter, no extra layers.
func DefaultConfig() *Config {
	return &Config{}
}

// TraceArc aggregates the archive, recording layer, dispatcher, and
// filter store.
type TraceArc struct {
	archive    *archive.Archive
	layer      *capture.Layer
	dispatcher *instrument.Dispatcher
	filters    *control.FilterStore
}

// New constructs TraceArc with the given configuration.
func New(cfg *Config) *TraceArc {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	a := cfg.Archive
	if a == nil {
		a = archive.Default
	}
	t := &TraceArc{
		archive: a,
		layer:   capture.NewLayer(a),
		filters: control.NewFilterStore(),
	}
	layers := make([]api.Layer, 0, 1+len(cfg.ExtraLayers))
	layers = append(layers, t.layer)
	layers = append(layers, cfg.ExtraLayers...)
	t.dispatcher = instrument.New(layers...)
	if cfg.Filter != "" {
		if err := t.filters.Set(cfg.Filter); err != nil {
			log.Printf("[facade] invalid filter %q: %v; starting unfiltered", cfg.Filter, err)
		}
	}
	return t
}

// Archive returns the underlying event archive.
func (t *TraceArc) Archive() *archive.Archive { return t.archive }

// Layer returns the recording layer, for hosts wired manually.
func (t *TraceArc) Layer() *capture.Layer { return t.layer }

// Dispatcher returns the instrumentation host.
func (t *TraceArc) Dispatcher() *instrument.Dispatcher { return t.dispatcher }

// Filters returns the runtime filter store.
func (t *TraceArc) Filters() *control.FilterStore { return t.filters }

// WithEvents is single-entry snapshot access. Not reentrancy safe; see
// archive.Archive.WithEvents.
func (t *TraceArc) WithEvents(fn func(events *[]*archive.Event)) {
	t.archive.WithEvents(fn)
}

// FilteredEvents snapshots the archive and hands fn the events admitted
// by the active directive set, in archive order. The slice is fn's to
// keep; it does not alias archive storage.
func (t *TraceArc) FilteredEvents(fn func(events []*archive.Event)) {
	t.archive.WithEvents(func(events *[]*archive.Event) {
		admitted := make([]*archive.Event, 0, len(*events))
		for _, ev := range *events {
			if t.filters.Admits(ev) {
				admitted = append(admitted, ev)
			}
		}
		fn(admitted)
	})
}

// ZapCore returns a zapcore.Core publishing log entries into the facade's
// archive at or above the given enabler.
func (t *TraceArc) ZapCore(enab zapcore.LevelEnabler) zapcore.Core {
	return adapters.NewArchiveCore(t.archive, enab)
}
