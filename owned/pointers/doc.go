// Package pointers provides helpers for pointer creation and conversions.
//
// Use this package to reduce boilerplate when constructing resources for
// ownership handles and when working with optional values, while keeping
// pointer semantics explicit at call sites.
package pointers
