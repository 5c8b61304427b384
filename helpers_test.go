package tapigo

import (
	"reflect"
	"unsafe"
)

// codePointer exposes the first byte of a hand-assembled instruction
// fixture as an unsafe.Pointer, the same shape FunctionSize/LocateCall
// expect for a real function entry point.
func codePointer(b []byte) unsafe.Pointer {
	return unsafe.Pointer(&b[0])
}

// uintptrFromFunc returns a Go function value's entry address, used by
// tests that need a real, stable address to embed as a call target in a
// hand-assembled instruction fixture.
func uintptrFromFunc(fn interface{}) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

// unsafe2Add is unsafe.Add with a plain int offset, for tests that
// compute a synthetic target address relative to a fixture's base.
func unsafe2Add(p unsafe.Pointer, off int) unsafe.Pointer {
	return unsafe.Add(p, off)
}
