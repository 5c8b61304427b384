//go:build windows

package tapigo

import (
	"os"

	"golang.org/x/sys/windows"
)

// duplicatedFD holds a saved Win32 handle; Windows has no dup2 (a
// descriptor is a kernel object handle, not a small integer slot), so
// the save/restore pair is expressed through DuplicateHandle and
// SetStdHandle instead of a pointer swap.
type duplicatedFD windows.Handle

func dupFD(fd uintptr) (duplicatedFD, error) {
	proc := windows.CurrentProcess()
	var dup windows.Handle
	err := windows.DuplicateHandle(proc, windows.Handle(fd), proc, &dup, 0, true, windows.DUPLICATE_SAME_ACCESS)
	if err != nil {
		return 0, err
	}
	return duplicatedFD(dup), nil
}

// dup2FD installs src as the process's standard-stream handle
// corresponding to dst, approximating POSIX dup2's "make dst an alias
// of src" by replacing the relevant GetStdHandle slot outright. dst must
// be the file descriptor of os.Stdout or os.Stderr; any other value is
// rejected rather than silently guessing which slot to overwrite.
func dup2FD(src, dst uintptr) error {
	switch dst {
	case os.Stdout.Fd():
		return windows.SetStdHandle(windows.STD_OUTPUT_HANDLE, windows.Handle(src))
	case os.Stderr.Fd():
		return windows.SetStdHandle(windows.STD_ERROR_HANDLE, windows.Handle(src))
	default:
		return ErrUnsupportedStream
	}
}

func closeDuplicatedFD(fd duplicatedFD) error {
	return windows.CloseHandle(windows.Handle(fd))
}

func duplicatedFDRaw(fd duplicatedFD) uintptr {
	return uintptr(fd)
}
