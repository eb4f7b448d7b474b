package owned

import "github.com/LerianStudio/lib-owned/owned/nocmp"

// Ptr is an exclusive-ownership handle over a single resource of type T,
// destroyed through the stateless policy D. The zero value is an empty
// handle.
//
// Ptr is one word. The nocmp marker makes `==` between two handles a
// compile error; use Equal for address identity.
type Ptr[T any, D Deleter[T]] struct {
	_ nocmp.NoCompare
	p *T
}

// Value is a Ptr with the default Discard policy, for resources whose
// cleanup is the garbage collector's.
type Value[T any] = Ptr[T, Discard[T]]

// New constructs a handle owning p, which may be nil.
//
// Precondition: a non-nil p must be eligible for D's Delete and must not be
// owned by any other handle. Neither is validated.
func New[T any, D Deleter[T]](p *T) Ptr[T, D] {
	trackAcquire(p)

	return Ptr[T, D]{p: p}
}

// NewValue constructs a Discard-policy handle owning p.
func NewValue[T any](p *T) Value[T] {
	return New[T, Discard[T]](p)
}

// NewClosing constructs a handle owning p whose destruction calls p.Close.
//
//	f, err := os.Open(path)
//	...
//	h := owned.NewClosing(f)
//	defer h.Close()
func NewClosing[T any, PT PointerCloser[T]](p PT) Ptr[T, CloseDelete[T, PT]] {
	return New[T, CloseDelete[T, PT]]((*T)(p))
}

// Get returns the held address without transferring ownership. The handle
// remains the sole owner; the address is valid only while the handle (or a
// successor it transfers to) owns it.
func (u *Ptr[T, D]) Get() *T {
	return u.p
}

// Valid reports whether the handle currently owns a resource.
func (u *Ptr[T, D]) Valid() bool {
	return u.p != nil
}

// Equal reports whether the handle holds exactly p.
func (u *Ptr[T, D]) Equal(p *T) bool {
	return u.p == p
}

// Release returns the held address and transfers ownership to the caller.
// The handle becomes empty and will not destroy the returned resource.
func (u *Ptr[T, D]) Release() *T {
	p := u.p
	u.p = nil

	trackForget(p)

	return p
}

// Reset destroys the currently held resource, if any, and takes ownership
// of p. Resetting to the already-held address is a no-op, so a resource is
// never destroyed out from under itself. Reset(nil) empties the handle.
func (u *Ptr[T, D]) Reset(p *T) {
	if p == u.p {
		return
	}

	u.destroy()
	u.p = p

	trackAcquire(p)
}

// Close destroys the held resource, if any, and empties the handle. It
// always returns nil; the error is there to satisfy io.Closer so a handle
// can be deferred or handed to cleanup helpers.
func (u *Ptr[T, D]) Close() error {
	u.Reset(nil)

	return nil
}

// Adopt moves ownership from src into the handle. The handle's previous
// resource, if any, is destroyed first, and src is emptied within the same
// operation; at no point do both handles own the same address. Adopting
// from itself is a no-op.
func (u *Ptr[T, D]) Adopt(src *Ptr[T, D]) {
	u.Reset(src.Release())
}

// Swap exchanges the held addresses of two handles. No destruction occurs.
func (u *Ptr[T, D]) Swap(o *Ptr[T, D]) {
	u.p, o.p = o.p, u.p
}

func (u *Ptr[T, D]) destroy() {
	if u.p == nil {
		return
	}

	trackForget(u.p)

	var d D

	d.Delete(u.p)
	u.p = nil
}
