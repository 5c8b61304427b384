// Package tapigo is an in-process unit-testing library for natively
// compiled Go code. Its distinguishing capability is call-site mocking by
// binary patching: given a pointer to a caller function F and a pointer to
// a callee T that F invokes, [CreateMock] locates the first direct call
// inside F that targets T and [Mock.Apply] rewrites that call instruction
// in place so F dispatches to a replacement M instead. [Mock.Restore]
// writes the original bytes back.
//
// # Disassembly backends
//
// Function boundaries and call sites are found by disassembling forward
// from a function pointer using golang.org/x/arch's x86, arm and arm64
// decoders, dispatched on the architecture probed by [Probe] (or
// overridden with [WithArch]). See [FunctionSize] and [LocateCall].
//
// # Patching
//
// [Patch] rewrites the displacement field of a direct call instruction
// under a scoped page-protection guard and flushes the instruction cache
// over the patched range. x86/x86-64, ARM A32, ARM Thumb and AArch64
// each have their own encoding, implemented in patch_x86.go, patch_arm.go
// and patch_arm64.go.
//
// # Mocks and the test runner
//
// [Mock] couples a (caller, callee, replacement) triple with the
// locate+patch lifecycle. A [Test] carries an ordered list of mocks plus
// optional setup/teardown; [Suite.RunTests] sequences setup, mock apply,
// the test body, mock restore and teardown for every registered test.
//
// # Stream capture
//
// [Capture] redirects a standard stream's file descriptor through an
// anonymous pipe into a [Sink] — either an in-memory buffer or another
// stream — for the duration of a test.
//
// Patching is not safe for concurrent execution of the patched bytes by
// another goroutine or OS thread: [Mock.Apply] and [Mock.Restore] take
// no lock and the rewrite is not atomic. Indirect calls (through a register or a
// memory slot holding a pointer), RIP-relative indirect calls on
// x86-64, and targets outside the architecture's encodable displacement
// range are out of scope.
package tapigo
