package owned

import "io"

// Deleter is the destruction policy of a scalar handle. Implementations
// must be stateless zero-size types: the policy is instantiated fresh at
// destruction time and is never stored in the handle.
//
// Delete is only invoked on non-nil addresses.
type Deleter[T any] interface {
	Delete(p *T)
}

// SliceDeleter is the destruction policy of a buffer handle. The same
// statelessness rule as Deleter applies.
//
// Delete is only invoked on owned (non-nil) buffers.
type SliceDeleter[T any] interface {
	Delete(s []T)
}

// Discard is the default policy: drop the reference and let the garbage
// collector reclaim the resource. Useful when the handle exists to express
// ownership discipline rather than to trigger cleanup.
type Discard[T any] struct{}

// Delete does nothing.
func (Discard[T]) Delete(*T) {}

// SliceDiscard is the Discard policy for buffers.
type SliceDiscard[T any] struct{}

// Delete does nothing.
func (SliceDiscard[T]) Delete([]T) {}

// PointerCloser constrains PT to be *T and an io.Closer. It exists so that
// CloseDelete can call Close through the pointer type without storing
// anything.
type PointerCloser[T any] interface {
	*T
	io.Closer
}

// CloseDelete destroys the resource by calling its Close method. The Close
// error is discarded; when a Close failure matters, close the resource
// explicitly and Release it from the handle instead of letting the deleter
// run.
type CloseDelete[T any, PT PointerCloser[T]] struct{}

// Delete closes the resource.
func (CloseDelete[T, PT]) Delete(p *T) {
	_ = PT(p).Close()
}
