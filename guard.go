package tapigo

import "unsafe"

// pageGuard elevates the memory protection of the page(s) covering a
// patch site for the duration of a write, then lowers it again. Platform
// implementations live in guard_unix.go (mprotect) and guard_windows.go
// (VirtualProtect). On Windows the protection recorded by VirtualProtect
// is restored; on POSIX the span is set to read-execute on close,
// whatever its protection was before.
type pageGuard struct {
	addr unsafe.Pointer
	size int
	prot int
}

// withPageGuard page-aligns [addr, addr+size), elevates protection to
// read-write-execute, invokes fn, and unconditionally closes the guard
// (see pageGuard for the protection it leaves) before returning, even if
// fn panics.
func withPageGuard(addr unsafe.Pointer, size int, fn func() error) error {
	g, err := openGuard(addr, size)
	if err != nil {
		return err
	}
	defer g.close()
	return fn()
}

func pageAlignDown(addr uintptr, pageSize int) uintptr {
	mask := uintptr(pageSize - 1)
	return addr &^ mask
}

// spanPages returns the page-aligned start address and total byte span
// covering [addr, addr+size), accounting for a patch that straddles a
// page boundary.
func spanPages(addr uintptr, size, pageSize int) (uintptr, int) {
	start := pageAlignDown(addr, pageSize)
	end := addr + uintptr(size)
	endAligned := pageAlignDown(end+uintptr(pageSize-1), pageSize)
	return start, int(endAligned - start)
}
