//go:build arm64

package tapigo

/*
#include <stddef.h>

static void tapigo_clear_cache(void *start, void *end) {
	__builtin___clear_cache((char *)start, (char *)end);
}
*/
import "C"

import "unsafe"

// flushInsnCache clears the AArch64 instruction cache line(s) covering a
// freshly patched BL using the compiler's builtin: without this the core
// that executed the old instruction may still serve it from I-cache
// after the write.
func flushInsnCache(addr unsafe.Pointer, size int) {
	start := addr
	end := unsafe.Add(addr, size)
	C.tapigo_clear_cache(start, end)
}
