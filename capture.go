package tapigo

import (
	"io"
	"os"
	"sync"
)

// captureChunkSize is the drain loop's read buffer size.
const captureChunkSize = 4096

// Capture redirects an OS-level standard stream (stdout or stderr) into
// a Sink for the duration it is active, via an anonymous pipe and
// descriptor duplication: pipe, dup the original fd aside, dup2 the
// pipe's write end over the target, drain the read end into the sink,
// then dup2 the saved original fd back on End.
type Capture struct {
	target   *os.File
	sink     *Sink
	pipeR    *os.File
	pipeW    *os.File
	savedFD  duplicatedFD
	drainWG  sync.WaitGroup
	drainErr error
	ended    bool
}

// NewCapture begins redirecting target (typically os.Stdout or
// os.Stderr) into sink. Go's os.File has no internal buffering to
// disable before redirecting, unlike a C stdio FILE*, so there is no
// unbuffered-mode step here.
func NewCapture(target *os.File, sink *Sink) (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	saved, err := dupFD(target.Fd())
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}

	if err := dup2FD(w.Fd(), target.Fd()); err != nil {
		r.Close()
		w.Close()
		closeDuplicatedFD(saved)
		return nil, err
	}

	c := &Capture{target: target, sink: sink, pipeR: r, pipeW: w, savedFD: saved}
	c.drainWG.Add(1)
	go c.drain()
	return c, nil
}

func (c *Capture) drain() {
	defer c.drainWG.Done()
	buf := make([]byte, captureChunkSize)
	for {
		n, err := c.pipeR.Read(buf)
		if n > 0 {
			if _, werr := c.sink.Write(buf[:n]); werr != nil && c.drainErr == nil {
				c.drainErr = werr
			}
		}
		if err != nil {
			if err != io.EOF {
				c.drainErr = err
			}
			return
		}
	}
}

// End stops the redirection, restoring the target stream's original
// destination, and blocks until the drain goroutine has flushed
// everything already written into the pipe.
func (c *Capture) End() error {
	if c.ended {
		return ErrNotApplied
	}
	if err := dup2FD(duplicatedFDRaw(c.savedFD), c.target.Fd()); err != nil {
		return err
	}
	c.pipeW.Close()
	c.drainWG.Wait()
	c.ended = true
	return c.drainErr
}

// Destroy releases the Capture's remaining file descriptors. Call it
// after End; Destroy on an active Capture calls End first.
func (c *Capture) Destroy() error {
	if !c.ended {
		if err := c.End(); err != nil {
			return err
		}
	}
	c.pipeR.Close()
	return closeDuplicatedFD(c.savedFD)
}
