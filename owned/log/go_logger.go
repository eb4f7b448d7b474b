package log

import (
	"context"
	"fmt"
	stdlog "log"
	"strings"
)

// controlCharReplacer escapes control characters that can be used for log
// injection. Newlines, carriage returns, and tabs in log messages can forge
// fake log entries or inject false audit trail entries.
var controlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// GoLogger is the Go built-in (log) implementation of the Logger interface.
//
// All string values are sanitized to prevent log injection. It is intended
// as a dependency-free default; production code should prefer the zap
// subpackage.
type GoLogger struct {
	Level  Level
	fields []Field
}

// NewGoLogger creates a stdlib-backed logger emitting entries at or above
// the given level.
func NewGoLogger(level Level) *GoLogger {
	return &GoLogger{Level: level}
}

// Log writes an entry through the standard library logger.
func (l *GoLogger) Log(_ context.Context, level Level, msg string, fields ...Field) {
	if !l.Enabled(level) {
		return
	}

	var b strings.Builder

	b.WriteString(level.String())
	b.WriteString(": ")
	b.WriteString(controlCharReplacer.Replace(msg))

	for _, f := range append(l.fields, fields...) {
		b.WriteString(" ")
		b.WriteString(f.Key)
		b.WriteString("=")

		if s, ok := f.Value.(string); ok {
			b.WriteString(controlCharReplacer.Replace(s))
		} else {
			fmt.Fprintf(&b, "%v", f.Value)
		}
	}

	stdlog.Print(b.String())
}

// With returns a logger that attaches fields to every entry.
//
//nolint:ireturn
func (l *GoLogger) With(fields ...Field) Logger {
	combined := make([]Field, 0, len(l.fields)+len(fields))
	combined = append(combined, l.fields...)
	combined = append(combined, fields...)

	return &GoLogger{Level: l.Level, fields: combined}
}

// Enabled reports whether the given level is emitted.
func (l *GoLogger) Enabled(level Level) bool {
	if l == nil {
		return false
	}

	return l.Level >= level
}

// Sync is a no-op for the standard library backend.
func (l *GoLogger) Sync(_ context.Context) error { return nil }
