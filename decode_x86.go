package tapigo

import (
	"golang.org/x/arch/x86/x86asm"
)

// decodeX86 decodes one x86/x86-64 instruction using x86asm.Decode and
// walks its operands for CALL targets. thumb is ignored on this
// architecture.
func decodeX86(code []byte, pc uint64, thumb bool) (decoded, error) {
	mode := 32
	if currentArch().Mode64 {
		mode = 64
	}

	inst, err := x86asm.Decode(code, mode)
	if err != nil {
		return decoded{}, ErrDecode
	}

	d := decoded{len: inst.Len}

	switch inst.Op {
	case x86asm.RET:
		d.isFunctionEnd = true
	case x86asm.IRET, x86asm.IRETD, x86asm.IRETQ:
		d.isFunctionEnd = true
	case x86asm.JMP:
		// x86asm assigns conditional jumps distinct Op values (JNE, JE,
		// JL, ...), so Op == JMP is always unconditional — a tail call.
		d.isFunctionEnd = true
	case x86asm.NOP, x86asm.INT3:
		d.isPadding = true
	case x86asm.CALL:
		d.isCall = true
		if rel, ok := inst.Args[0].(x86asm.Rel); ok {
			// Only the 5-byte E8 rel32 form is ever marked patchable; an
			// absolute-immediate CALL form (if the decoder ever produced
			// one) is deliberately not treated as relative, since the
			// patcher only rewrites E8 displacements.
			d.isRelative = true
			d.hasTarget = true
			d.origOff = int32(rel)
			d.target = pc + uint64(inst.Len) + uint64(int64(rel))
		}
	}
	return d, nil
}
