package leak

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/LerianStudio/lib-owned/owned/log"
)

// The registry records every address currently held by an ownership handle,
// keyed by the raw address. Tracking is off by default; the disabled fast
// path is a single atomic load so handles stay zero-overhead in production.

var (
	enabled atomic.Bool

	mu   sync.Mutex
	live = map[unsafe.Pointer]entry{}
)

type entry struct {
	what string
	pcs  [8]uintptr
	n    int
}

// Leak describes one address still owned by a handle at inspection time.
type Leak struct {
	// What is the resource type, e.g. "*os.File".
	What string

	// Origin is the call site that acquired ownership, as "file:line".
	Origin string

	// Addr is the leaked address.
	Addr uintptr
}

// Enable turns on ownership tracking. Handles acquired before Enable are
// not tracked.
func Enable() {
	enabled.Store(true)
}

// Disable turns off tracking and drops all recorded state.
func Disable() {
	enabled.Store(false)

	mu.Lock()
	clear(live)
	mu.Unlock()
}

// Enabled reports whether tracking is on. Handle code uses this to skip the
// type-name computation when tracking is off.
func Enabled() bool {
	return enabled.Load()
}

// Track records that an ownership handle acquired p. Called by the owned
// package; not intended for direct use.
func Track(p unsafe.Pointer, what string) {
	if p == nil || !enabled.Load() {
		return
	}

	e := entry{what: what}
	e.n = runtime.Callers(3, e.pcs[:])

	mu.Lock()
	live[p] = e
	mu.Unlock()
}

// Untrack records that ownership of p left the handle layer, either by
// release to the caller or by destruction.
func Untrack(p unsafe.Pointer) {
	if p == nil || !enabled.Load() {
		return
	}

	mu.Lock()
	delete(live, p)
	mu.Unlock()
}

// Live returns the number of currently tracked addresses.
func Live() int {
	mu.Lock()
	defer mu.Unlock()

	return len(live)
}

// Leaks returns a snapshot of all currently tracked addresses.
func Leaks() []Leak {
	mu.Lock()
	defer mu.Unlock()

	leaks := make([]Leak, 0, len(live))
	for p, e := range live {
		leaks = append(leaks, Leak{
			What:   e.what,
			Origin: e.origin(),
			Addr:   uintptr(p),
		})
	}

	return leaks
}

// Report logs every tracked address through logger at error level and
// returns the number reported. A zero return means no leaks.
func Report(ctx context.Context, logger log.Logger) int {
	if logger == nil {
		logger = log.NewNop()
	}

	leaks := Leaks()
	for _, l := range leaks {
		logger.Log(ctx, log.LevelError, "owned handle leaked",
			log.String("type", l.What),
			log.String("origin", l.Origin),
			log.String("addr", fmt.Sprintf("0x%x", l.Addr)),
		)
	}

	return len(leaks)
}

// origin resolves the first recorded caller frame outside this library, so
// reports point at the code that acquired ownership rather than at the
// handle internals.
func (e entry) origin() string {
	if e.n == 0 {
		return "unknown"
	}

	frames := runtime.CallersFrames(e.pcs[:e.n])

	first := ""

	for {
		frame, more := frames.Next()
		if frame.File == "" {
			break
		}

		loc := fmt.Sprintf("%s:%d", frame.File, frame.Line)
		if first == "" {
			first = loc
		}

		if !internalFrame(frame.Function) {
			return loc
		}

		if !more {
			break
		}
	}

	if first == "" {
		return "unknown"
	}

	return first
}

func internalFrame(fn string) bool {
	return strings.HasPrefix(fn, "github.com/LerianStudio/lib-owned/owned.") ||
		strings.HasPrefix(fn, "github.com/LerianStudio/lib-owned/owned/leak.")
}
