// File: adapters/zap_adapter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// zapcore.Core bridge: records zap log entries into an Archive so that
// application logs and instrumented events land in the same snapshot.

package adapters

import (
	"sync"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/momentics/tracearc/api"
	"github.com/momentics/tracearc/archive"
)

// ArchiveCore is a zapcore.Core that turns every written entry into an
// archived event. Entries carry no span scope; zap has no span notion.
type ArchiveCore struct {
	zapcore.LevelEnabler
	archive *archive.Archive
	with    []zapcore.Field
	metas   *metaCache
}

var _ zapcore.Core = (*ArchiveCore)(nil)

// NewArchiveCore returns a core publishing into a at or above the given
// enabler. A nil a selects the package default archive.
func NewArchiveCore(a *archive.Archive, enab zapcore.LevelEnabler) *ArchiveCore {
	if a == nil {
		a = archive.Default
	}
	return &ArchiveCore{LevelEnabler: enab, archive: a, metas: newMetaCache()}
}

// With returns a child core carrying the accumulated fields.
func (c *ArchiveCore) With(fields []zapcore.Field) zapcore.Core {
	child := *c
	child.with = make([]zapcore.Field, 0, len(c.with)+len(fields))
	child.with = append(child.with, c.with...)
	child.with = append(child.with, fields...)
	return &child
}

// Check adds the core to the checked entry when the level is enabled.
func (c *ArchiveCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write builds and publishes the event record for one entry. The message
// is recorded under the "message" field; accumulated and per-call fields
// follow in order.
func (c *ArchiveCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	meta := c.metas.get(ent.LoggerName, zapLevel(ent.Level))
	ev := archive.NewEvent(meta, ent.Time.Local().Truncate(time.Millisecond), nil)
	ev.Record("message", archive.String(ent.Message))
	for _, f := range c.with {
		recordZapField(ev, f)
	}
	for _, f := range fields {
		recordZapField(ev, f)
	}
	c.archive.Publish(ev)
	return nil
}

// Sync is a no-op; publication is synchronous.
func (c *ArchiveCore) Sync() error { return nil }

// recordZapField maps a zap field onto the archive field domain. Typed
// arms cover the primitive forms; everything else goes through zap's map
// encoder and is captured by its debug rendering.
func recordZapField(ev *archive.Event, f zapcore.Field) {
	switch f.Type {
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type, zapcore.DurationType:
		ev.Record(f.Key, archive.Int64(f.Integer))
	case zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type, zapcore.UintptrType:
		ev.Record(f.Key, archive.Uint64(uint64(f.Integer)))
	case zapcore.BoolType:
		ev.Record(f.Key, archive.Bool(f.Integer == 1))
	case zapcore.StringType:
		ev.Record(f.Key, archive.String(f.String))
	case zapcore.ErrorType:
		if err, ok := f.Interface.(error); ok {
			ev.Record(f.Key, archive.ErrorValue(err))
			return
		}
		ev.Record(f.Key, archive.Debug(f.Interface))
	default:
		enc := zapcore.NewMapObjectEncoder()
		f.AddTo(enc)
		for k, v := range enc.Fields {
			ev.Record(k, archive.Debug(v))
		}
	}
}

// zapLevel maps zap severities onto the archive's five levels. zap has no
// trace; everything at error and above collapses to error.
func zapLevel(l zapcore.Level) api.Level {
	switch {
	case l <= zapcore.DebugLevel:
		return api.LevelDebug
	case l == zapcore.InfoLevel:
		return api.LevelInfo
	case l == zapcore.WarnLevel:
		return api.LevelWarn
	default:
		return api.LevelError
	}
}

// metaCache keeps one Metadata per logger name and level, so records
// share pointer-stable metadata the way instrumented callsites do.
type metaCache struct {
	mu sync.Mutex
	m  map[metaKey]*api.Metadata
}

type metaKey struct {
	target string
	level  api.Level
}

func newMetaCache() *metaCache {
	return &metaCache{m: make(map[metaKey]*api.Metadata)}
}

func (c *metaCache) get(loggerName string, level api.Level) *api.Metadata {
	target := loggerName
	if target == "" {
		target = "zap"
	}
	key := metaKey{target: target, level: level}
	c.mu.Lock()
	defer c.mu.Unlock()
	if meta, ok := c.m[key]; ok {
		return meta
	}
	meta := &api.Metadata{Name: "log", Target: target, Level: level}
	c.m[key] = meta
	return meta
}
