package tapigo

import (
	"encoding/binary"
	"unsafe"
)

// arm64BLOpcode is the fixed top 6 bits of an AArch64 BL encoding
// (0x94000000 masked by 0xFC000000); only the low 26 bits ever change.
const arm64BLOpcode = 0x94000000

// arm64BLWordOffsetMin and arm64BLWordOffsetMax bound the signed 26-bit
// word-count field an AArch64 BL can encode, equivalent to a ±128 MiB
// byte range around pc.
const (
	arm64BLWordOffsetMin = -(1 << 25)
	arm64BLWordOffsetMax = (1 << 25) - 1
)

// patchARM64 rewrites an AArch64 BL's 26-bit signed word offset:
// offset = (target - pc) >> 2. Returns ErrOutOfRange, leaving the bytes
// untouched, if the true word offset doesn't fit the field.
func patchARM64(d *CallDescriptor, replacement unsafe.Pointer) error {
	if d.Size != 4 {
		return ErrWrongOpcode
	}
	pc := uint64(uintptr(d.CallAddr))
	target := uint64(uintptr(replacement))
	wordOff := (int64(target) - int64(pc)) >> 2
	if wordOff < arm64BLWordOffsetMin || wordOff > arm64BLWordOffsetMax {
		return ErrOutOfRange
	}
	offset := uint32(wordOff) & 0x03FFFFFF

	enc := uint32(arm64BLOpcode) | offset
	buf := unsafe.Slice((*byte)(d.CallAddr), 4)
	binary.LittleEndian.PutUint32(buf, enc)
	return nil
}
