package tapigo

import (
	"golang.org/x/arch/arm/armasm"
)

// ARM condition-code field occupies the top 4 bits of every 32-bit A32
// encoding; 0xE is AL (always).
const armCondAL = 0xE

// decodeARM decodes one ARM A32 or Thumb (T32) instruction. thumb
// selects the decode mode; A32 and Thumb share opcodes (BL/BLX for
// calls, B for branches) but differ in encoding width and condition
// placement.
func decodeARM(code []byte, pc uint64, thumb bool) (decoded, error) {
	mode := armasm.ModeARM
	if thumb {
		mode = armasm.ModeThumb
	}

	inst, err := armasm.Decode(code, mode)
	if err != nil {
		return decoded{}, ErrDecode
	}

	d := decoded{len: inst.Len}

	switch inst.Op {
	case armasm.BL, armasm.BLX:
		d.isCall = true
		fillARMCallTarget(&d, inst, pc, thumb)
	case armasm.B, armasm.BX:
		d.isFunctionEnd = isUnconditionalARMBranch(inst, thumb)
	case armasm.MOV:
		d.isPadding = isMovSameReg(inst)
	}

	if !d.isPadding {
		d.isPadding = isCanonicalARMNop(inst, thumb)
	}
	return d, nil
}

// fillARMCallTarget resolves the absolute target and original encoded
// offset of a BL/BLX. armasm.Decode has no notion of the instruction's
// own address, so the
// PCRel argument it reports for a branch is the already-shifted
// pc-relative byte offset, not an absolute address: ARM measures it from
// pc+8, Thumb from pc+4. origOff is recovered by un-shifting that byte
// offset back to the encoding's natural word/halfword unit (2 for A32,
// 1 for T32).
func fillARMCallTarget(d *decoded, inst armasm.Inst, pc uint64, thumb bool) {
	for _, arg := range inst.Args {
		rel, ok := arg.(armasm.PCRel)
		if !ok {
			continue
		}
		offset := int64(int32(rel))
		base := pc + 8
		shift := uint(2)
		if thumb {
			base = pc + 4
			shift = 1
		}
		d.hasTarget = true
		d.isRelative = true
		d.target = uint64(int64(base) + offset)
		d.origOff = int32(offset >> shift)
		return
	}
}

// isUnconditionalARMBranch reports whether a B/BX is a tail-call-shaped
// function terminator: AL-conditioned in A32, or the 16-bit T2 /
// 32-bit-unconditional T4 encodings in Thumb. Thumb conditional
// short-form branches (T1, used for intra-function control flow) are
// deliberately excluded so a function is not truncated at an early
// conditional edge.
func isUnconditionalARMBranch(inst armasm.Inst, thumb bool) bool {
	if !thumb {
		return (inst.Enc>>28)&0xF == armCondAL
	}
	if inst.Len == 2 {
		// T2 unconditional B: halfword pattern 1110 0xxx xxxx xxxx.
		return (inst.Enc>>11)&0x1F == 0x1C
	}
	// T3 (conditional) vs. T4 (unconditional) 32-bit Thumb B: bit 12 of
	// the second halfword is 0 for conditional, 1 for unconditional.
	return (inst.Enc>>12)&1 == 1
}

// isMovSameReg reports the "mov rX, rX" no-op alias used as padding by
// some ARM toolchains: there is no dedicated alias opcode for it, so
// operand register identity is checked directly.
func isMovSameReg(inst armasm.Inst) bool {
	dst, ok1 := inst.Args[0].(armasm.Reg)
	src, ok2 := inst.Args[1].(armasm.Reg)
	return ok1 && ok2 && dst == src
}

// isCanonicalARMNop recognizes the dedicated NOP hint encodings: A32
// 0xE320F000 and Thumb 0xBF00.
func isCanonicalARMNop(inst armasm.Inst, thumb bool) bool {
	if thumb {
		return inst.Len == 2 && inst.Enc == 0xBF00
	}
	return inst.Enc == 0xE320F000
}
