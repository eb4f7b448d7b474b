package owned

import (
	"reflect"
	"unsafe"

	"github.com/LerianStudio/lib-owned/owned/leak"
)

// Leak-registry hooks. The Enabled check runs here, before the type name is
// computed, so the disabled path does no work beyond one atomic load.

func trackAcquire[T any](p *T) {
	if p == nil || !leak.Enabled() {
		return
	}

	leak.Track(unsafe.Pointer(p), reflect.TypeFor[*T]().String())
}

func trackForget[T any](p *T) {
	if p == nil || !leak.Enabled() {
		return
	}

	leak.Untrack(unsafe.Pointer(p))
}

// Buffers are tracked by backing-array address. Empty buffers are skipped:
// zero-length slices may share a sentinel address, which would collide in
// the registry.

func trackAcquireSlice[T any](s []T) {
	if len(s) == 0 || !leak.Enabled() {
		return
	}

	leak.Track(unsafe.Pointer(unsafe.SliceData(s)), reflect.TypeFor[[]T]().String())
}

func trackForgetSlice[T any](s []T) {
	if len(s) == 0 || !leak.Enabled() {
		return
	}

	leak.Untrack(unsafe.Pointer(unsafe.SliceData(s)))
}
