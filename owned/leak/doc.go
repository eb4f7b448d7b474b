// Package leak provides opt-in tracking of addresses held by ownership
// handles, for finding resources that were acquired but never destroyed or
// released.
//
// Tracking is disabled by default and costs a single atomic load per handle
// operation while off. When enabled, every acquisition records the owning
// call site; Report writes the still-owned set through an owned/log.Logger,
// and VerifyNone fails a test when anything remains owned.
//
// The registry is goroutine-safe. It tracks addresses, not handles: a
// transfer between handles leaves the address tracked, and only destruction
// or release to the caller removes it.
package leak
