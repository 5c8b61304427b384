//go:build linux

package tapigo

import (
	"debug/elf"
	"fmt"
	"os"
	"unsafe"
)

// symbolAddress resolves name's runtime address by reading the running
// process's own ELF image (/proc/self/exe) and its symbol table, falling
// back to the dynamic symbol table, then adding the bias from loadBias,
// which only succeeds for a non-PIE executable. This supplements the core
// LocateCall/CreateMock path (which takes addresses the caller already
// has in hand) for callers that only know a callee by name.
func symbolAddress(name string) (unsafe.Pointer, error) {
	self, err := os.Open("/proc/self/exe")
	if err != nil {
		return nil, err
	}
	defer self.Close()

	f, err := elf.NewFile(self)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	syms, err := f.Symbols()
	if err != nil {
		syms, err = f.DynamicSymbols()
		if err != nil {
			return nil, err
		}
	}

	for _, sym := range syms {
		if sym.Name == name && sym.Value != 0 {
			bias, err := loadBias(f)
			if err != nil {
				return nil, err
			}
			return unsafe.Pointer(uintptr(sym.Value + bias)), nil
		}
	}
	return nil, fmt.Errorf("tapigo: symbol %q not found", name)
}

// loadBias returns 0 for a non-PIE executable (ET_EXEC, absolute
// symbols) and an error for any other image type, including a PIE
// (ET_DYN, symbols relative to the image). Computing a PIE's runtime
// base would need /proc/self/maps, which this function does not read;
// DESIGN.md covers why this stays outside the patching core.
func loadBias(f *elf.File) (uint64, error) {
	if f.Type == elf.ET_EXEC {
		return 0, nil
	}
	return 0, fmt.Errorf("tapigo: PIE load bias resolution not implemented")
}

// MockFromSymbols is the symbol-name convenience form of CreateMock: it
// resolves caller, callee, and replacement by name in the current
// process image before delegating to CreateMock.
func MockFromSymbols(name, caller, callee, replacement string) (*Mock, error) {
	callerAddr, err := symbolAddress(caller)
	if err != nil {
		return nil, err
	}
	calleeAddr, err := symbolAddress(callee)
	if err != nil {
		return nil, err
	}
	replacementAddr, err := symbolAddress(replacement)
	if err != nil {
		return nil, err
	}
	return CreateMock(name, callerAddr, calleeAddr, replacementAddr)
}
