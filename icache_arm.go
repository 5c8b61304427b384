//go:build arm

package tapigo

/*
#include <stddef.h>

static void tapigo_clear_cache(void *start, void *end) {
	__builtin___clear_cache((char *)start, (char *)end);
}
*/
import "C"

import "unsafe"

// flushInsnCache is ARM A32/Thumb's counterpart to icache_arm64.go; the
// same builtin call works for both encodings since it flushes by address
// range rather than by instruction.
func flushInsnCache(addr unsafe.Pointer, size int) {
	start := addr
	end := unsafe.Add(addr, size)
	C.tapigo_clear_cache(start, end)
}
