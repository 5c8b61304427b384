package tapigo

import "unsafe"

// mockState tracks a Mock's position in its Created -> Applied ->
// Restored lifecycle.
type mockState int

const (
	mockCreated mockState = iota
	mockApplied
	mockRestored
)

// Mock redirects a single call site from caller to replacement for the
// duration it is Applied, and restores the original call exactly on
// Restore; see Unpatch's doc comment for why restore replays saved bytes
// rather than re-locating the call site.
type Mock struct {
	name        string
	call        *CallDescriptor
	replacement unsafe.Pointer
	state       mockState
}

// CreateMock locates the call site inside caller targeting callee and
// prepares a Mock that will redirect it to replacement once Applied.
// name is used only for diagnostics and test-runner reporting.
func CreateMock(name string, caller, callee, replacement unsafe.Pointer) (*Mock, error) {
	call, err := LocateCall(caller, callee)
	if err != nil {
		return nil, err
	}
	return &Mock{name: name, call: call, replacement: replacement, state: mockCreated}, nil
}

// Name reports the Mock's diagnostic name.
func (m *Mock) Name() string { return m.name }

// Apply patches the located call site to target the replacement. Apply
// on an already-applied Mock returns ErrAlreadyApplied. A run-time panic
// while touching the raw call-site memory (e.g. a nil dereference or an
// out-of-range slice) is recovered and reported as ErrGuardFailed rather
// than crashing the process, since this library's whole purpose is
// poking at raw pointers supplied by the caller. A hardware fault on an
// unmapped address is not a panic in Go and still ends the process.
func (m *Mock) Apply() (err error) {
	if m.state == mockApplied {
		return ErrAlreadyApplied
	}
	defer recoverIntoErr(&err)

	if err := Patch(m.call, m.replacement); err != nil {
		return err
	}
	m.state = mockApplied
	diagnostic().Debugw("mock applied", "name", m.name)
	return nil
}

// Restore writes the call site's original bytes back, undoing Apply.
// Restore on a Mock that was never applied returns ErrNotApplied.
func (m *Mock) Restore() (err error) {
	if m.state != mockApplied {
		return ErrNotApplied
	}
	defer recoverIntoErr(&err)

	if err := Unpatch(m.call); err != nil {
		return err
	}
	m.state = mockRestored
	diagnostic().Debugw("mock restored", "name", m.name)
	return nil
}

// recoverIntoErr converts a panic arising from raw-pointer misuse inside
// Apply/Restore into a returned error instead of letting it crash the
// process.
func recoverIntoErr(err *error) {
	if r := recover(); r != nil {
		diagnostic().Warnw("mock operation panicked", "recovered", r)
		*err = ErrGuardFailed
	}
}

// Applied reports whether the Mock currently has its replacement live.
func (m *Mock) Applied() bool { return m.state == mockApplied }
