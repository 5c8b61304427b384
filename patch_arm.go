package tapigo

import (
	"encoding/binary"
	"unsafe"
)

// armBLTopByte is the fixed top byte of an A32 unconditional BL encoding
// (cond field AL folded in); only the low 24 bits ever change.
const armBLTopByte = 0xEB

// armBLWordOffsetMin and armBLWordOffsetMax bound the signed 24-bit
// word-count field an A32 BL can encode, equivalent to a ±32 MiB byte
// range around pc+8.
const (
	armBLWordOffsetMin = -(1 << 23)
	armBLWordOffsetMax = (1 << 23) - 1
)

// patchARM rewrites an A32 BL's 24-bit signed word offset:
// offset = (target - (pc+8)) >> 2, stored little-endian across the low
// 3 bytes of the 4-byte instruction. Returns ErrOutOfRange, leaving the
// bytes untouched, if the true word offset doesn't fit the field.
func patchARM(d *CallDescriptor, replacement unsafe.Pointer) error {
	if d.Size != 4 {
		return ErrWrongOpcode
	}
	pc := uint64(uintptr(d.CallAddr))
	target := uint64(uintptr(replacement))
	wordOff := (int64(target) - int64(pc+8)) >> 2
	if wordOff < armBLWordOffsetMin || wordOff > armBLWordOffsetMax {
		return ErrOutOfRange
	}
	offset := uint32(wordOff) & 0x00FFFFFF

	enc := uint32(armBLTopByte)<<24 | offset
	buf := unsafe.Slice((*byte)(d.CallAddr), 4)
	binary.LittleEndian.PutUint32(buf, enc)
	return nil
}

// Thumb BL two-halfword S/I1/I2/J1/J2 field layout (ARM ARM A6.7.13).
const (
	thumbBLHi = 0xF000 // first halfword: 1111 0 S imm10
	thumbBLLo = 0xD000 // second halfword: 11 J1 1 J2 imm11
)

// thumbBLOffsetMin and thumbBLOffsetMax bound the signed byte offset a
// Thumb BL's S:I1:I2:imm10:imm11 fields can encode (sign-extended to 25
// bits with the implicit trailing halfword-alignment bit), a ±16 MiB
// range around pc+4.
const (
	thumbBLOffsetMin = -(1 << 24)
	thumbBLOffsetMax = (1 << 24) - 1
)

// patchARMThumb rewrites a Thumb BL's split 24-bit halfword offset across its two
// 16-bit halfwords: the offset is measured from pc+4, right-shifted by 1
// (halfword alignment), and its sign/I1/I2/J1/J2 bits re-derived per the
// standard encoding so existing disassemblers decode the patched
// instruction correctly. Returns ErrOutOfRange, leaving the bytes
// untouched, if the true byte offset doesn't fit the encodable range.
func patchARMThumb(d *CallDescriptor, replacement unsafe.Pointer) error {
	if d.Size != 4 {
		return ErrWrongOpcode
	}
	pc := uint64(uintptr(d.CallAddr))
	target := uint64(uintptr(replacement))
	off := int64(target) - int64(pc+4)
	if off < thumbBLOffsetMin || off > thumbBLOffsetMax {
		return ErrOutOfRange
	}

	imm := off >> 1
	s := uint16((imm >> 23) & 1)
	i1 := uint16((imm >> 22) & 1)
	i2 := uint16((imm >> 21) & 1)
	j1 := (1 - (i1 ^ s)) & 1
	j2 := (1 - (i2 ^ s)) & 1
	imm10 := uint16((imm >> 11) & 0x3FF)
	imm11 := uint16(imm & 0x7FF)

	hi := thumbBLHi | s<<10 | imm10
	lo := thumbBLLo | j1<<13 | j2<<11 | imm11

	buf := unsafe.Slice((*byte)(d.CallAddr), 4)
	binary.LittleEndian.PutUint16(buf[0:2], hi)
	binary.LittleEndian.PutUint16(buf[2:4], lo)
	return nil
}
