//go:build !windows

package tapigo

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// openGuard mprotects the page span covering addr to RWX, recording the
// span so close can restore it to read-execute, via
// golang.org/x/sys/unix.
func openGuard(addr unsafe.Pointer, size int) (*pageGuard, error) {
	pageSize := os.Getpagesize()
	start, span := spanPages(uintptr(addr), size, pageSize)

	region := unsafe.Slice((*byte)(unsafe.Pointer(start)), span)
	if err := unix.Mprotect(region, unix.PROT_READ|unix.PROT_WRITE|unix.PROT_EXEC); err != nil {
		diagnostic().Warnw("page guard: mprotect rwx failed", "error", err)
		return nil, ErrGuardFailed
	}
	return &pageGuard{addr: unsafe.Pointer(start), size: span}, nil
}

func (g *pageGuard) close() {
	region := unsafe.Slice((*byte)(g.addr), g.size)
	if err := unix.Mprotect(region, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		diagnostic().Warnw("page guard: mprotect restore failed", "error", err)
	}
}
