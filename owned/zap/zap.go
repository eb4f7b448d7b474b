package zap

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/LerianStudio/lib-owned/owned/log"
)

// Config contains the logger initialization inputs.
type Config struct {
	// Level is the verbosity ceiling ("error", "warn", "info", "debug").
	// Defaults to "info" when empty.
	Level string

	// Development switches to a human-readable console encoder with
	// stacktraces on warnings, matching zap's development preset.
	Development bool
}

// Logger bridges the owned/log abstraction to go.uber.org/zap.
type Logger struct {
	base  *zap.Logger
	level log.Level
}

// New creates a zap-backed logger honoring cfg.
func New(cfg Config) (*Logger, error) {
	level := log.LevelInfo

	if cfg.Level != "" {
		parsed, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid zap config: %w", err)
		}

		level = parsed
	}

	zapConfig := zap.NewProductionConfig()
	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
	}

	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel(level))

	base, err := zapConfig.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}

	return &Logger{base: base, level: level}, nil
}

// Wrap adapts an existing *zap.Logger. The level ceiling is taken from the
// wrapped logger's core at the time of each Enabled call.
func Wrap(base *zap.Logger) *Logger {
	return &Logger{base: base, level: log.LevelDebug}
}

// Log writes an entry through zap at the corresponding level.
func (l *Logger) Log(_ context.Context, level log.Level, msg string, fields ...log.Field) {
	l.base.Log(zapLevel(level), msg, zapFields(fields)...)
}

// With returns a logger that attaches fields to every entry.
//
//nolint:ireturn
func (l *Logger) With(fields ...log.Field) log.Logger {
	return &Logger{base: l.base.With(zapFields(fields)...), level: l.level}
}

// Enabled reports whether the given level would be emitted.
func (l *Logger) Enabled(level log.Level) bool {
	return l.base.Core().Enabled(zapLevel(level))
}

// Sync flushes buffered entries.
func (l *Logger) Sync(_ context.Context) error {
	return l.base.Sync()
}

// zapLevel maps the owned/log severity scale onto zap's.
func zapLevel(level log.Level) zapcore.Level {
	switch level {
	case log.LevelDebug:
		return zapcore.DebugLevel
	case log.LevelInfo:
		return zapcore.InfoLevel
	case log.LevelWarn:
		return zapcore.WarnLevel
	case log.LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func zapFields(fields []log.Field) []zap.Field {
	converted := make([]zap.Field, 0, len(fields))

	for _, f := range fields {
		if err, ok := f.Value.(error); ok && f.Key == "error" {
			converted = append(converted, zap.Error(err))
			continue
		}

		converted = append(converted, zap.Any(f.Key, f.Value))
	}

	return converted
}
