//go:build linux

package tapigo

import "testing"

//go:noinline
func elfLookupTestTarget() int { return 7 }

func TestSymbolAddressFindsOwnSymbol(t *testing.T) {
	addr, err := symbolAddress("github.com/nhobeck/tapigo.elfLookupTestTarget")
	if err != nil {
		t.Skipf("symbol table lookup unavailable in this build (PIE load bias, stripped binary): %v", err)
	}
	if addr == nil {
		t.Error("symbolAddress returned a nil pointer with no error")
	}
}

func TestSymbolAddressMissingReturnsError(t *testing.T) {
	if _, err := symbolAddress("tapigo_test_symbol_that_does_not_exist"); err == nil {
		t.Error("expected an error for a nonexistent symbol")
	}
}
