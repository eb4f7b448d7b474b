package nocmp

// NoCompare makes the struct embedding it non-comparable, causing the
// compiler to reject `==` and `!=` between two values of that type.
//
// Ownership handles embed it so that comparing two handles with `==` is a
// compile error instead of a silent struct comparison: handle identity is
// almost never what the caller meant, and address identity is available
// through the handle's Equal helpers.
//
// The field is zero-size and adds no per-instance storage. Place it first
// in the struct to avoid trailing padding.
type NoCompare [0]func()
