package leak

import "testing"

// VerifyNone fails the test if any tracked address is still owned by a
// handle. Call it at the end of a test that enabled tracking:
//
//	leak.Enable()
//	defer leak.Disable()
//	...
//	leak.VerifyNone(t)
func VerifyNone(t testing.TB) {
	t.Helper()

	for _, l := range Leaks() {
		t.Errorf("leaked %s acquired at %s (addr 0x%x)", l.What, l.Origin, l.Addr)
	}
}
