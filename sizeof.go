package tapigo

import "unsafe"

// maxPaddingRun is the number of consecutive padding instructions
// tolerated after a function-ending instruction before the estimator
// stops; on the next instruction past this run (or the first non-padding
// instruction) the estimator assumes it has wandered into the next
// function. 
const maxPaddingRun = 2

// FunctionSize estimates the byte length of the function starting at
// entry by disassembling forward until a genuine terminator (plus its
// trailing padding run) is seen, capped at max bytes. It never returns
// more than max. A size of 0 indicates the disassembler could not decode
// even the first instruction.
//
// For cap < actual function size, FunctionSize returns cap and logs a
// warning to the diagnostic channel.
func FunctionSize(entry unsafe.Pointer, max int) int {
	arch := currentArch()
	decode, err := backendFor(arch)
	if err != nil {
		diagnostic().Warnw("function size: unsupported architecture", "arch", arch.Family.String())
		return 0
	}
	thumb := isThumb(arch, uintptr(entry))

	code := unsafe.Slice((*byte)(entry), max)

	size := 0
	padCount := 0
	foundEnd := false

	for size < max {
		inst, err := decode(code[size:], uint64(uintptr(entry))+uint64(size), thumb)
		if err != nil {
			diagnostic().Warnw("function size: decode failed mid-stream", "offset", size)
			break
		}
		if inst.len == 0 {
			break
		}

		// Once the terminator has been seen, only padding instructions
		// extend the function; the first non-padding instruction belongs
		// to whatever follows and is not counted.
		if foundEnd && !inst.isPadding {
			break
		}

		if foundEnd && inst.isPadding {
			padCount++
			if padCount > maxPaddingRun {
				// This run of padding is longer than tolerated; treat it
				// as the start of whatever follows rather than trailing
				// alignment, and back out of counting it.
				break
			}
		}

		size += inst.len

		if inst.isFunctionEnd {
			foundEnd = true
		}

		if size >= max {
			diagnostic().Warnw("function size: hit max search size", "max", max)
			break
		}
	}
	return size
}
