package tapigo

import "testing"

func TestSetupPreservesUnsetFields(t *testing.T) {
	t.Cleanup(func() { Setup() })

	Setup(WithLogPath("/tmp/tapigo-test.log"))
	arch := Arch{Family: FamilyARM}
	Setup(WithArch(arch))

	cfg := activeConfig()
	if cfg.logPath != "/tmp/tapigo-test.log" {
		t.Errorf("logPath = %q, want it preserved across the second Setup call", cfg.logPath)
	}
	if cfg.archOverride == nil || *cfg.archOverride != arch {
		t.Errorf("archOverride = %v, want %v", cfg.archOverride, arch)
	}
}

func TestSetupWithNoOptionsResetsNothing(t *testing.T) {
	t.Cleanup(func() { Setup() })

	Setup(WithArch(Arch{Family: FamilyX86}))
	Setup()

	if activeConfig().archOverride == nil {
		t.Error("Setup() with no options should not clear a prior override")
	}
}
