package tapigo

import "testing"

func withARM(t *testing.T) {
	t.Helper()
	Setup(WithArch(Arch{Family: FamilyARM}))
	t.Cleanup(func() { Setup() })
}

func TestDecodeARMConditionalBranchNotFunctionEnd(t *testing.T) {
	withARM(t)
	// BEQ #0 (cond=0x0, not AL): 00 00 00 0A little-endian.
	d, err := decodeARM([]byte{0x00, 0x00, 0x00, 0x0A}, 0, false)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.isFunctionEnd {
		t.Error("conditional B must not be treated as a function end")
	}
}

func TestDecodeARMUnconditionalBranchIsFunctionEnd(t *testing.T) {
	withARM(t)
	// B #0 (cond=0xE, AL): 00 00 00 EA little-endian.
	d, err := decodeARM([]byte{0x00, 0x00, 0x00, 0xEA}, 0, false)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !d.isFunctionEnd {
		t.Error("AL-conditioned unconditional B should be a function end")
	}
}

func TestDecodeARMThumbConditionalBranchNotFunctionEnd(t *testing.T) {
	withARM(t)
	// T1 BEQ #0 (cond=0x0, imm8=0): 16-bit halfword 0xD000, little-endian.
	d, err := decodeARM([]byte{0x00, 0xD0}, 0, true)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.isFunctionEnd {
		t.Error("conditional Thumb B must not be treated as a function end")
	}
}

func TestDecodeARMThumbUnconditionalBranchIsFunctionEnd(t *testing.T) {
	withARM(t)
	// T2 unconditional B, imm11=0: 16-bit halfword 0xE000, little-endian.
	d, err := decodeARM([]byte{0x00, 0xE0}, 0, true)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !d.isFunctionEnd {
		t.Error("unconditional Thumb B should be a function end")
	}
}

func TestFunctionSizeARMDoesNotTruncateAtConditionalBranch(t *testing.T) {
	withARM(t)
	// BEQ #0 (not a terminator); B #0 (AL, terminator). 8 bytes total.
	code := []byte{
		0x00, 0x00, 0x00, 0x0A,
		0x00, 0x00, 0x00, 0xEA,
	}
	got := FunctionSize(codePointer(code), len(code))
	if got != 8 {
		t.Errorf("FunctionSize = %d, want 8 (conditional branch must not end the function early)", got)
	}
}
