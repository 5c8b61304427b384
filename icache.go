package tapigo

// flushInsnCache invalidates the instruction cache for [addr, addr+size)
// after a patch is written. On x86/x86-64, hardware guarantees instruction
// and data caches stay coherent, so icache_other.go's implementation is a
// no-op there. ARM and AArch64 require an explicit flush (icache_arm.go,
// icache_arm64.go) via the compiler's cgo clear-cache builtin.
//
// This file declares nothing; the function is declared per-GOARCH in
// icache_arm.go, icache_arm64.go and icache_other.go.
