// File: api/level.go
// Author: momentics <momentics@gmail.com>
//
// Severity levels for events, spans, and filter directives.

package api

import "strings"

// Level is a severity ordinal. Lower is more severe; LevelOff admits nothing.
type Level uint8

const (
	LevelOff Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// levelNames maps ordinals to canonical lowercase names.
var levelNames = [...]string{
	LevelOff:   "off",
	LevelError: "error",
	LevelWarn:  "warn",
	LevelInfo:  "info",
	LevelDebug: "debug",
	LevelTrace: "trace",
}

// String returns the canonical lowercase name of the level.
func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// Enabled reports whether an event at level l passes a ceiling of max.
// More severe levels have lower ordinals, so l <= max passes.
func (l Level) Enabled(max Level) bool {
	return l <= max
}

// ParseLevel parses a level token. Names are matched case-insensitively;
// the digits 0 through 5 map to off through trace. Returns false for any
// other token, including the empty string.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(s) {
	case "off", "0":
		return LevelOff, true
	case "error", "1":
		return LevelError, true
	case "warn", "2":
		return LevelWarn, true
	case "info", "3":
		return LevelInfo, true
	case "debug", "4":
		return LevelDebug, true
	case "trace", "5":
		return LevelTrace, true
	}
	return LevelOff, false
}
