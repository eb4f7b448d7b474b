// Package zap adapts go.uber.org/zap to the owned/log.Logger interface.
//
// Use it to route lib-owned diagnostics (such as leak reports) into an
// application's existing zap pipeline.
package zap
