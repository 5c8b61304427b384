package tapigo

import (
	"bytes"
	"io"
)

// Sink is the destination a Capture drains a redirected stream into.
// An in-memory buffer destination and a file-descriptor destination
// collapse to the same io.Writer interface here; Go has no equivalent
// split between buffered-memory and OS-file streams at that level.
type Sink struct {
	w io.Writer
}

// NewSink returns a Sink with no destination set; call SetBuffer or
// SetStream before using it with NewCapture.
func NewSink() *Sink {
	return &Sink{}
}

// SetBuffer directs the sink's output into buf.
func (s *Sink) SetBuffer(buf *bytes.Buffer) {
	s.w = buf
}

// SetStream directs the sink's output into an arbitrary io.Writer,
// such as an *os.File opened for a test fixture.
func (s *Sink) SetStream(w io.Writer) {
	s.w = w
}

// Write implements io.Writer, forwarding to whichever destination was
// configured. Write on a Sink with no destination set discards the data.
func (s *Sink) Write(p []byte) (int, error) {
	if s.w == nil {
		return len(p), nil
	}
	return s.w.Write(p)
}
