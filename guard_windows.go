//go:build windows

package tapigo

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// windowsPageSize is the page granularity VirtualProtect operates on for
// all supported Windows architectures (x86, x86-64, ARM64); large-page
// mappings are out of scope.
const windowsPageSize = 4096

// openGuard is the Win32 counterpart of guard_unix.go's mprotect-based
// guard: VirtualProtect elevates the page span to PAGE_EXECUTE_READWRITE,
// recording the original protection so close can restore it exactly
// rather than assuming PAGE_EXECUTE_READ.
func openGuard(addr unsafe.Pointer, size int) (*pageGuard, error) {
	start, span := spanPages(uintptr(addr), size, windowsPageSize)

	var oldProt uint32
	err := windows.VirtualProtect(start, uintptr(span), windows.PAGE_EXECUTE_READWRITE, &oldProt)
	if err != nil {
		diagnostic().Warnw("page guard: VirtualProtect rwx failed", "error", err)
		return nil, ErrGuardFailed
	}
	return &pageGuard{addr: unsafe.Pointer(start), size: span, prot: int(oldProt)}, nil
}

func (g *pageGuard) close() {
	var oldProt uint32
	err := windows.VirtualProtect(uintptr(g.addr), uintptr(g.size), uint32(g.prot), &oldProt)
	if err != nil {
		diagnostic().Warnw("page guard: VirtualProtect restore failed", "error", err)
	}
}
