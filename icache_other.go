//go:build !arm && !arm64

package tapigo

import "unsafe"

// flushInsnCache is a no-op on x86/x86-64: those architectures guarantee
// self-modifying code is observed coherently without explicit flushing.
func flushInsnCache(addr unsafe.Pointer, size int) {}
