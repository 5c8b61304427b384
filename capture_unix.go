//go:build !windows

package tapigo

import "golang.org/x/sys/unix"

// duplicatedFD is a saved POSIX file descriptor, kept aside by dupFD so
// End can dup2 it back over the captured stream.
type duplicatedFD int

func dupFD(fd uintptr) (duplicatedFD, error) {
	newfd, err := unix.Dup(int(fd))
	if err != nil {
		return 0, err
	}
	return duplicatedFD(newfd), nil
}

func dup2FD(src, dst uintptr) error {
	return unix.Dup2(int(src), int(dst))
}

func closeDuplicatedFD(fd duplicatedFD) error {
	return unix.Close(int(fd))
}

func duplicatedFDRaw(fd duplicatedFD) uintptr {
	return uintptr(fd)
}
