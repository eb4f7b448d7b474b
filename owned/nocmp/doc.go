// Package nocmp provides a zero-size marker that disables `==`/`!=` on the
// struct embedding it.
//
// Use it on types whose value identity is meaningless or misleading, such as
// ownership handles, where direct comparison usually indicates a caller bug.
package nocmp
