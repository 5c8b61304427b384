package tapigo

// decoded generalizes one disassembled instruction across the three
// golang.org/x/arch backends (x86asm, armasm, arm64asm), abstracting
// just the facts the size estimator and call locator need.
// This is the "minimal trait" called for in Design Notes  open/
// iterate/close collapses to a single decodeFunc call per instruction,
// since none of the three backends need an open handle the way a
// capstone-style disassembler does.
type decoded struct {
	len int // instruction length in bytes

	isCall     bool   // direct or indirect call/branch-with-link
	isRelative bool   // target is patchable: PC-relative or (x86-64) absolute-but-rewritable
	hasTarget  bool   // target is statically resolvable
	target     uint64 // resolved absolute target, valid iff hasTarget
	origOff    int32  // original encoded displacement, architecture's natural unit

	isFunctionEnd bool // return, interrupt-return, or unconditional relative branch
	isPadding     bool // architecture-specific padding (nop family)
}

// decodeFunc decodes one instruction at pc from the front of code. thumb
// selects Thumb-mode decoding and is only meaningful for FamilyARM.
type decodeFunc func(code []byte, pc uint64, thumb bool) (decoded, error)

// backendFor resolves the decodeFunc for an architecture family.
func backendFor(arch Arch) (decodeFunc, error) {
	switch arch.Family {
	case FamilyX86:
		return decodeX86, nil
	case FamilyARM:
		return decodeARM, nil
	case FamilyAArch64:
		return decodeARM64, nil
	default:
		return nil, ErrUnknownArch
	}
}
