package logger

import (
	"fmt"
	"log/slog"
)

// Levels above slog.LevelError. Panic and Fatal are emitted right before panicking or exiting.
const (
	LevelCritical = slog.Level(12)
	LevelPanic    = slog.Level(14)
	LevelFatal    = slog.Level(16)
)

var levelNames = []struct {
	level slog.Level
	name  string
}{
	{LevelFatal, "FATAL"},
	{LevelPanic, "PANIC"},
	{LevelCritical, "CRITICAL"},
}

// levelAttrReplacer renders the custom levels by name instead of "ERROR+4".
func levelAttrReplacer(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) != 0 || attr.Key != LevelKey {
		return attr
	}
	l, ok := attr.Value.Any().(slog.Level)
	if !ok || l < LevelCritical {
		return attr
	}
	for _, ln := range levelNames {
		if l < ln.level {
			continue
		}
		name := ln.name
		if delta := l - ln.level; delta != 0 {
			name = fmt.Sprintf("%s%+d", ln.name, delta)
		}
		return slog.String(attr.Key, name)
	}
	return attr
}
