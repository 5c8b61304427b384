package tapigo

import "runtime"

// Family identifies an instruction-set family.
type Family int

// Recognized instruction-set families.
const (
	FamilyUnknown Family = iota
	FamilyX86
	FamilyARM
	FamilyAArch64
)

// String implements fmt.Stringer.
func (f Family) String() string {
	switch f {
	case FamilyX86:
		return "x86"
	case FamilyARM:
		return "arm"
	case FamilyAArch64:
		return "aarch64"
	default:
		return "unknown"
	}
}

// Arch is the (family, mode) pair that selects a disassembler and patch
// backend. Mode64 only applies to FamilyX86 (64-bit vs. 32-bit). Thumb
// only applies to FamilyARM and is derived per call from the low bit of
// the pointer under inspection, not carried here as a static property of
// the build.
type Arch struct {
	Family Family
	Mode64 bool
}

// Probe returns the architecture family and mode for the running binary,
// derived from runtime.GOARCH at call time. Callers that need a fixed
// architecture regardless of GOARCH (e.g. cross-targeted tests) should
// use [WithArch] with [Setup] instead of calling Probe directly.
func Probe() Arch {
	switch runtime.GOARCH {
	case "amd64", "amd64p32":
		return Arch{Family: FamilyX86, Mode64: true}
	case "386":
		return Arch{Family: FamilyX86, Mode64: false}
	case "arm64":
		return Arch{Family: FamilyAArch64}
	case "arm":
		return Arch{Family: FamilyARM}
	default:
		return Arch{Family: FamilyUnknown}
	}
}

// currentArch returns the effective architecture: the override installed
// via [WithArch], or the probed native one.
func currentArch() Arch {
	if cfg := activeConfig(); cfg.archOverride != nil {
		return *cfg.archOverride
	}
	return Probe()
}

// isThumb reports whether a pointer on an ARM (FamilyARM) target lies in
// a Thumb-mode code region, per the architecture's low-bit convention
// (the address's least-significant bit marks interworking Thumb state).
func isThumb(arch Arch, ptr uintptr) bool {
	return arch.Family == FamilyARM && ptr&1 != 0
}
