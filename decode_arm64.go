package tapigo

import (
	"encoding/binary"

	"golang.org/x/arch/arm64/arm64asm"
)

const aarch64NopEnc = 0xD503201F

// decodeARM64 decodes one AArch64 instruction. AArch64 instructions are
// always 4 bytes wide, so the decoded length is fixed regardless of
// opcode. thumb is unused on this architecture.
func decodeARM64(code []byte, pc uint64, thumb bool) (decoded, error) {
	if len(code) < 4 {
		return decoded{}, ErrDecode
	}
	inst, err := arm64asm.Decode(code[:4])
	if err != nil {
		return decoded{}, ErrDecode
	}

	d := decoded{len: 4}

	switch inst.Op {
	case arm64asm.RET:
		d.isFunctionEnd = true
	case arm64asm.BL:
		d.isCall = true
		fillARM64CallTarget(&d, inst, pc)
	case arm64asm.BLR:
		// register-indirect branch-with-link; recognised as a call but
		// never patchable.
		d.isCall = true
	case arm64asm.B:
		d.isFunctionEnd = isUnconditionalARM64Branch(inst)
	}

	if binary.LittleEndian.Uint32(code[:4]) == aarch64NopEnc {
		d.isPadding = true
	}
	return d, nil
}

// fillARM64CallTarget resolves a BL's PC-relative immediate: origOff is
// simply target - pc, the encoding's own shift already folded into the
// decoder's PCRel value.
func fillARM64CallTarget(d *decoded, inst arm64asm.Inst, pc uint64) {
	pcrel, ok := inst.Args[0].(arm64asm.PCRel)
	if !ok {
		return
	}
	target := pc + uint64(int64(pcrel))
	d.hasTarget = true
	d.isRelative = true
	d.target = target
	d.origOff = int32(int64(target) - int64(pc))
}

// isUnconditionalARM64Branch distinguishes B from B.cond: the
// conditional form carries a Cond argument, plain B does not.
func isUnconditionalARM64Branch(inst arm64asm.Inst) bool {
	for _, arg := range inst.Args {
		if _, ok := arg.(arm64asm.Cond); ok {
			return false
		}
	}
	return true
}
