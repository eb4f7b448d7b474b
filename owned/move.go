package owned

// Move transfers ownership out of src and returns the new owner, leaving
// src empty. Functionally it is New(src.Release()); it exists to mark a
// call site as a deliberate ownership transfer:
//
//	sink(owned.Move(&h))
func Move[T any, D Deleter[T]](src *Ptr[T, D]) Ptr[T, D] {
	return New[T, D](src.Release())
}

// As transfers ownership from src into a handle bound to a different
// deletion policy, by release-then-reconstruct. The source is emptied; the
// address is never aliased by two live owners.
//
// The destination policy is given explicitly; the rest is inferred:
//
//	h2 := owned.As[owned.Discard[widget]](&h)
//
// Precondition: the address must be eligible for D2's Delete.
func As[D2 Deleter[T], T any, D1 Deleter[T]](src *Ptr[T, D1]) Ptr[T, D2] {
	return New[T, D2](src.Release())
}

// Equal reports whether two handles hold the same address, regardless of
// their deletion policies. It compares addresses, never pointee contents.
func Equal[T any, D1, D2 Deleter[T]](a *Ptr[T, D1], b *Ptr[T, D2]) bool {
	return a.Get() == b.Get()
}
