package tapigo

import (
	"bytes"
	"fmt"
	"os"
	"testing"
)

// TestCaptureRedirectsStdout drives a real os.Pipe/dup2 redirection of
// os.Stdout, matching how the original library is meant to be used:
// wrap a block of test code that writes to stdout and assert on what it
// produced instead of letting it reach the real terminal.
func TestCaptureRedirectsStdout(t *testing.T) {
	sink := NewSink()
	var buf bytes.Buffer
	sink.SetBuffer(&buf)

	c, err := NewCapture(os.Stdout, sink)
	if err != nil {
		t.Fatalf("NewCapture: %v", err)
	}

	fmt.Println("captured line")

	if err := c.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	if err := c.Destroy(); err != nil {
		t.Fatalf("Destroy: %v", err)
	}

	if got := buf.String(); got != "captured line\n" {
		t.Errorf("captured output = %q, want %q", got, "captured line\n")
	}
}

func TestCaptureEndTwiceFails(t *testing.T) {
	sink := NewSink()
	c, err := NewCapture(os.Stdout, sink)
	if err != nil {
		t.Fatalf("NewCapture: %v", err)
	}
	if err := c.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	if err := c.End(); err != ErrNotApplied {
		t.Errorf("second End err = %v, want ErrNotApplied", err)
	}
	c.Destroy()
}
