package tapigo

import "errors"

// Sentinel errors returned by the mocking subsystem. Wrap with fmt.Errorf
// and %w when adding context; callers should compare with errors.Is.
var (
	// ErrCallNotFound is returned by LocateCall when the caller's body
	// contains no direct call to the requested callee.
	ErrCallNotFound = errors.New("tapigo: no direct call to target found")

	// ErrNotRelative is returned by Patch when the call descriptor is
	// not marked patchable (e.g. an indirect call, or an x86-64 call
	// through a form other than the 5-byte E8 encoding).
	ErrNotRelative = errors.New("tapigo: call is not a patchable relative call")

	// ErrWrongOpcode is returned when the bytes at a call site no longer
	// decode to the opcode the architecture-specific patcher expects.
	ErrWrongOpcode = errors.New("tapigo: instruction at call site is not the expected opcode")

	// ErrOutOfRange is returned when a replacement target does not fit
	// in the architecture's encodable displacement range.
	ErrOutOfRange = errors.New("tapigo: replacement target is out of the encodable displacement range")

	// ErrGuardFailed is returned when page-protection could not be
	// changed for the range covering a patch.
	ErrGuardFailed = errors.New("tapigo: failed to acquire write permission on the target page")

	// ErrNotApplied is returned by Mock.Restore when called on a mock
	// that was never successfully applied.
	ErrNotApplied = errors.New("tapigo: cannot restore a mock that has not been applied")

	// ErrAlreadyApplied is returned by Mock.Apply when called twice.
	ErrAlreadyApplied = errors.New("tapigo: mock has already been applied")

	// ErrUnknownArch is returned when the probed or overridden
	// architecture doesn't match any supported backend.
	ErrUnknownArch = errors.New("tapigo: unsupported or undetected architecture")

	// ErrDecode is returned when the disassembler cannot make forward
	// progress decoding an instruction stream.
	ErrDecode = errors.New("tapigo: failed to decode instruction")

	// ErrUnsupportedStream is returned on Windows when a capture target
	// is neither os.Stdout nor os.Stderr; the POSIX capture accepts any
	// file descriptor.
	ErrUnsupportedStream = errors.New("tapigo: capture target must be stdout or stderr")
)
