package owned

import (
	"unsafe"

	"github.com/LerianStudio/lib-owned/owned/nocmp"
)

// Buf is the buffer-shaped counterpart of Ptr: an exclusive-ownership
// handle over a []T, destroyed through the stateless policy D. The zero
// value is an empty handle.
//
// Identity is the backing array, not the slice header: two Bufs over
// reslices of the same array hold "the same address" for the purposes of
// Reset and EqualBuf.
type Buf[T any, D SliceDeleter[T]] struct {
	_ nocmp.NoCompare
	s []T
}

// NewBuf constructs a handle owning s, which may be nil.
//
// Precondition: a non-nil s must be eligible for D's Delete and its backing
// array must not be owned by any other handle. Neither is validated.
func NewBuf[T any, D SliceDeleter[T]](s []T) Buf[T, D] {
	trackAcquireSlice(s)

	return Buf[T, D]{s: s}
}

// Get returns the held buffer without transferring ownership.
func (b *Buf[T, D]) Get() []T {
	return b.s
}

// At returns the address of the i-th element of the owned buffer. Bounds
// are checked only by Go's own slice indexing.
func (b *Buf[T, D]) At(i int) *T {
	return &b.s[i]
}

// Len returns the length of the held buffer, zero when empty.
func (b *Buf[T, D]) Len() int {
	return len(b.s)
}

// Valid reports whether the handle currently owns a buffer.
func (b *Buf[T, D]) Valid() bool {
	return b.s != nil
}

// Release returns the held buffer and transfers ownership to the caller.
// The handle becomes empty and will not destroy the returned buffer.
func (b *Buf[T, D]) Release() []T {
	s := b.s
	b.s = nil

	trackForgetSlice(s)

	return s
}

// Reset destroys the currently held buffer, if any, and takes ownership of
// s. Resetting to a slice over the already-owned backing array only adopts
// the new bounds; the buffer is not destroyed. Reset(nil) empties the
// handle.
func (b *Buf[T, D]) Reset(s []T) {
	if unsafe.SliceData(s) == unsafe.SliceData(b.s) {
		b.s = s
		return
	}

	b.destroy()
	b.s = s

	trackAcquireSlice(s)
}

// Close destroys the held buffer, if any, and empties the handle. Always
// returns nil; see Ptr.Close.
func (b *Buf[T, D]) Close() error {
	b.Reset(nil)

	return nil
}

// Adopt moves ownership from src into the handle, destroying the handle's
// previous buffer first and emptying src within the same operation.
func (b *Buf[T, D]) Adopt(src *Buf[T, D]) {
	b.Reset(src.Release())
}

// Swap exchanges the held buffers of two handles. No destruction occurs.
func (b *Buf[T, D]) Swap(o *Buf[T, D]) {
	b.s, o.s = o.s, b.s
}

func (b *Buf[T, D]) destroy() {
	if b.s == nil {
		return
	}

	trackForgetSlice(b.s)

	var d D

	d.Delete(b.s)
	b.s = nil
}

// MoveBuf transfers ownership out of src and returns the new owner,
// leaving src empty.
func MoveBuf[T any, D SliceDeleter[T]](src *Buf[T, D]) Buf[T, D] {
	return NewBuf[T, D](src.Release())
}

// EqualBuf reports whether two handles own the same backing array,
// regardless of their deletion policies.
func EqualBuf[T any, D1, D2 SliceDeleter[T]](a *Buf[T, D1], b *Buf[T, D2]) bool {
	return unsafe.SliceData(a.Get()) == unsafe.SliceData(b.Get())
}
