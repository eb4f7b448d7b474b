package pointers

// Of returns a pointer to v. Handy for building a resource to hand to an
// ownership handle, or for optional fields in DTOs.
func Of[T any](v T) *T {
	return &v
}

// Deref dereferences p, returning the zero value of T when p is nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T

		return zero
	}

	return *p
}

// Clone returns a pointer to a shallow copy of *p, or nil when p is nil.
// Unlike an ownership transfer, both pointers stay usable; the copy has no
// owner until one is given.
func Clone[T any](p *T) *T {
	if p == nil {
		return nil
	}

	c := *p

	return &c
}

// When returns a pointer to v when cond is true, nil otherwise.
func When[T any](v T, cond bool) *T {
	if !cond {
		return nil
	}

	return &v
}
