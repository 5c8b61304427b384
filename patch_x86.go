package tapigo

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// x86CallOpcode is the E8 near-CALL rel32 opcode; this is the only
// 5-byte CALL encoding ever rewritten.
const x86CallOpcode = 0xE8

// patchX86 rewrites an E8 rel32 CALL's displacement in place: the
// opcode byte is written back as E8 and the 4-byte little-endian
// displacement at offset+1 is replaced, relative to the first byte
// past the instruction. Returns ErrOutOfRange, leaving the bytes
// untouched, if the true displacement doesn't fit in a signed 32-bit
// field.
func patchX86(d *CallDescriptor, replacement unsafe.Pointer) error {
	if d.Size != 5 || d.Bytes[0] != x86CallOpcode {
		return ErrWrongOpcode
	}
	disp64 := int64(uintptr(replacement)) - int64(uintptr(d.CallAddr)) - int64(d.Size)
	if disp64 < math.MinInt32 || disp64 > math.MaxInt32 {
		return ErrOutOfRange
	}
	disp := int32(disp64)

	buf := unsafe.Slice((*byte)(d.CallAddr), d.Size)
	buf[0] = x86CallOpcode
	binary.LittleEndian.PutUint32(buf[1:5], uint32(disp))
	return nil
}
