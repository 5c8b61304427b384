package tapigo

import "unsafe"

// patchFunc overwrites a located call's displacement so it targets
// replacement instead of its original callee. It returns only an error;
// the bytes that were in place beforehand stay in d.Bytes, as captured
// by LocateCall, for later restoration.
type patchFunc func(d *CallDescriptor, replacement unsafe.Pointer) error

// patchBackendFor resolves the per-architecture displacement rewriter,
// one per instruction encoding this package knows how to patch.
func patchBackendFor(arch Arch, thumb bool) (patchFunc, error) {
	switch arch.Family {
	case FamilyX86:
		return patchX86, nil
	case FamilyARM:
		if thumb {
			return patchARMThumb, nil
		}
		return patchARM, nil
	case FamilyAArch64:
		return patchARM64, nil
	default:
		return nil, ErrUnknownArch
	}
}

// Patch rewrites the call site described by d to target replacement
// instead of its original destination, under a page-protection guard,
// and flushes the instruction cache over the patched bytes. d.Bytes
// retains the pre-patch snapshot so Unpatch can restore it verbatim.
//
// Patch refuses to act on a non-relative call site (ErrNotRelative):
// translating an absolute or register-indirect call would require
// allocating a trampoline, which is out of scope. It also refuses a
// replacement too far from the call site to encode in the
// architecture's displacement field (ErrOutOfRange); either way the
// call site is left untouched.
func Patch(d *CallDescriptor, replacement unsafe.Pointer) error {
	if !d.IsRelative {
		return ErrNotRelative
	}
	arch := currentArch()
	patch, err := patchBackendFor(arch, d.IsThumb)
	if err != nil {
		return err
	}

	return withPageGuard(d.CallAddr, d.Size, func() error {
		if err := patch(d, replacement); err != nil {
			return err
		}
		flushInsnCache(d.CallAddr, d.Size)
		return nil
	})
}

// Unpatch writes d.Bytes back over the call site verbatim, restoring the
// original instruction exactly as captured by LocateCall. This replays
// the saved encoding rather than re-locating the call by searching for
// the replacement as callee: re-locating risks patching the wrong site
// if more than one caller targets the same replacement.
func Unpatch(d *CallDescriptor) error {
	return withPageGuard(d.CallAddr, d.Size, func() error {
		dst := unsafe.Slice((*byte)(d.CallAddr), d.Size)
		copy(dst, d.Bytes[:d.Size])
		flushInsnCache(d.CallAddr, d.Size)
		return nil
	})
}
