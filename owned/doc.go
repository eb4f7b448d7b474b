// Package owned provides exclusive-ownership handles for resources that
// need explicit cleanup: pooled objects, closable resources, externally
// allocated buffers.
//
// A handle owns at most one resource at a time, and a resource must be
// owned by at most one live handle. Ownership moves; it is never shared.
// Transfers always clear the source in the same operation, so there is no
// window in which two handles own the same address:
//
//	src := owned.NewPooled[bytes.Buffer]()
//	dst := owned.Move(&src) // src is now empty
//
// The destruction policy is a type parameter, not a field: a Deleter is a
// zero-size stateless type whose Delete method is invoked on the owned
// address when the handle is reset, adopted over, or closed. A handle is
// therefore exactly one word, and swapping deletion behavior costs nothing
// per instance.
//
// Go has no destructors; release the resource explicitly, normally with
// defer:
//
//	h := owned.NewClosing(f)
//	defer h.Close()
//
// Handles are values but must not be copied with plain assignment: Go
// cannot distinguish a copy from a move, and a value copy would create two
// handles owning the same resource. Use Move, Adopt, or Swap, and pass
// handles by pointer. Comparing two handles with == is a compile error
// (see nocmp); compare held addresses with Equal instead.
//
// Changing the shape of a handle is always release-then-reconstruct, never
// aliasing: As rebinds the deletion policy over the released address, and
// widening to an interface-typed owner is written as a Release followed by
// a New over the released resource. Either way the source is empty before
// the destination exists.
//
// The package performs no runtime validation. Constructing two owners over
// the same address, dereferencing after Release, or handing an address to
// a handle whose deleter cannot destroy it is undefined behavior, in line
// with the zero-overhead goal. A handle must not be used from multiple
// goroutines without external synchronization.
package owned
