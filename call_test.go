package tapigo

import (
	"encoding/binary"
	"testing"
	"unsafe"
)

//go:noinline
func callTestCallee() int { return 42 }

//go:noinline
func callTestReplacement() int { return 43 }

// buildX86CallSite hand-assembles "nop; call rel32; ret" with the call
// aimed calleeOff bytes past the fixture's first byte, and returns the
// fixture and that target. The target is synthetic: the fixture lives on
// the heap, which is further from a real Go function than a rel32
// displacement can reach.
func buildX86CallSite(t *testing.T, calleeOff int) ([]byte, unsafe.Pointer) {
	t.Helper()
	code := make([]byte, 8)
	code[0] = 0x90 // leading nop, so the call isn't at offset 0
	code[1] = x86CallOpcode
	code[6] = 0xC3 // ret terminator after the call

	callee := unsafe2Add(codePointer(code), calleeOff)
	callAddr := uintptr(unsafe.Pointer(&code[1]))
	disp := int32(int64(uintptr(callee)) - int64(callAddr) - 5)
	binary.LittleEndian.PutUint32(code[2:6], uint32(disp))
	return code, callee
}

func TestLocateCallFindsDirectCall(t *testing.T) {
	withX86(t)

	code, callee := buildX86CallSite(t, 0x40)
	caller := codePointer(code)

	d, err := LocateCall(caller, callee)
	if err != nil {
		t.Fatalf("LocateCall returned error: %v", err)
	}
	if d.CallAddr != unsafe.Pointer(&code[1]) {
		t.Errorf("CallAddr = %p, want %p", d.CallAddr, &code[1])
	}
	if !d.IsRelative {
		t.Error("expected IsRelative to be true for an E8 call")
	}
	if d.Size != 5 {
		t.Errorf("Size = %d, want 5", d.Size)
	}
}

func TestLocateCallMissReturnsErrCallNotFound(t *testing.T) {
	withX86(t)

	code := []byte{0x90, 0xC3} // nop; ret, no call at all
	_, err := LocateCall(codePointer(code), unsafe.Pointer(uintptr(0x1234)))
	if err != ErrCallNotFound {
		t.Errorf("err = %v, want ErrCallNotFound", err)
	}
}
