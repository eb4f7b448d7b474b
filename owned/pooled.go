package owned

import (
	"reflect"
	"sync"
)

// Process-wide per-type pools, the generic allocation/deallocation pair
// behind the Pooled variant. A stateless deleter cannot carry a pool
// reference, so the pool is looked up by element type, the same way a
// global allocator pairs alloc with free.
var pools sync.Map // reflect.Type -> *sync.Pool

func poolFor[T any]() *sync.Pool {
	key := reflect.TypeFor[T]()

	if v, ok := pools.Load(key); ok {
		return v.(*sync.Pool)
	}

	v, _ := pools.LoadOrStore(key, &sync.Pool{New: func() any { return new(T) }})

	return v.(*sync.Pool)
}

// PoolDelete destroys the resource by zeroing it and returning it to the
// process-wide pool for T. Only addresses obtained from NewPooled (or
// Release'd from a Pooled handle) may be destroyed this way.
type PoolDelete[T any] struct{}

// Delete zeroes *p and returns it to the pool.
func (PoolDelete[T]) Delete(p *T) {
	var zero T

	*p = zero

	poolFor[T]().Put(p)
}

// Pooled is a Ptr pre-bound to the pool-backed deletion policy. It is the
// variant for resources acquired through the generic allocation path
// rather than constructed by the caller.
type Pooled[T any] = Ptr[T, PoolDelete[T]]

// NewPooled acquires a zeroed T from the process-wide pool and returns a
// handle owning it. Closing the handle returns the object to the pool.
func NewPooled[T any]() Pooled[T] {
	return New[T, PoolDelete[T]](poolFor[T]().Get().(*T))
}
