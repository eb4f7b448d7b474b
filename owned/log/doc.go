// Package log defines the logging abstraction used by lib-owned diagnostics.
//
// The core ownership handles never log; logging only appears in supporting
// facilities such as the leak registry, which report through the Logger
// interface so the host application controls the backend. A no-op logger and
// a stdlib-backed GoLogger are provided here; the zap subpackage adapts
// go.uber.org/zap.
package log
