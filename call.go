package tapigo

import "unsafe"

// maxCallScan bounds how far LocateCall walks into caller looking for a
// call site before giving up, mirroring the cap FunctionSize itself
// enforces.
const maxCallScan = 4096

// callSnapshotSize is the largest patchable call encoding across the
// supported architectures (x86-64 E8 rel32 is 5 bytes, AArch64/ARM are
// 4 bytes, Thumb BL is 4 bytes); 32 bytes leaves slack for any backend
// that reports a longer instruction without truncating the snapshot.
const callSnapshotSize = 32

// CallDescriptor locates a single call instruction inside caller that
// targets callee, and snapshots its original bytes so a patch can be
// undone exactly. 
type CallDescriptor struct {
	CallAddr   unsafe.Pointer // address of the call instruction's first byte
	DestAddr   unsafe.Pointer // callee, as resolved at the call site
	Size       int            // length of the call instruction in bytes
	Bytes      [callSnapshotSize]byte
	IsRelative bool  // target is PC-relative and therefore patchable in place
	IsThumb    bool  // call site is Thumb-encoded (ARM only)
	OrigOff    int32 // original encoded displacement, for diagnostics
}

// LocateCall disassembles caller forward, instruction by instruction,
// until it finds a call whose resolved target equals callee, or it runs
// out of function (a terminator past the call search) or maxCallScan
// bytes. It never mutates memory.
func LocateCall(caller, callee unsafe.Pointer) (*CallDescriptor, error) {
	arch := currentArch()
	decode, err := backendFor(arch)
	if err != nil {
		return nil, ErrUnknownArch
	}
	thumb := isThumb(arch, uintptr(caller))

	code := unsafe.Slice((*byte)(caller), maxCallScan)
	want := uint64(uintptr(callee))

	offset := 0
	for offset < maxCallScan {
		pc := uint64(uintptr(caller)) + uint64(offset)
		inst, err := decode(code[offset:], pc, thumb)
		if err != nil {
			diagnostic().Warnw("locate call: decode failed", "offset", offset)
			return nil, ErrCallNotFound
		}
		if inst.len == 0 {
			return nil, ErrCallNotFound
		}

		if inst.isCall && inst.hasTarget && inst.target == want {
			return buildDescriptor(caller, offset, inst, thumb)
		}

		if inst.isFunctionEnd && !inst.isCall {
			break
		}

		offset += inst.len
	}
	return nil, ErrCallNotFound
}

func buildDescriptor(caller unsafe.Pointer, offset int, inst decoded, thumb bool) (*CallDescriptor, error) {
	if inst.len > callSnapshotSize {
		diagnostic().Warnw("locate call: instruction longer than snapshot buffer", "len", inst.len)
		return nil, ErrOutOfRange
	}

	callAddr := unsafe.Add(caller, offset)
	src := unsafe.Slice((*byte)(callAddr), inst.len)

	d := &CallDescriptor{
		CallAddr:   callAddr,
		DestAddr:   unsafe.Pointer(uintptr(inst.target)),
		Size:       inst.len,
		IsRelative: inst.isRelative,
		IsThumb:    thumb,
		OrigOff:    inst.origOff,
	}
	copy(d.Bytes[:], src)
	return d, nil
}
