package main

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer guards a bytes.Buffer against the spinner goroutine writing
// while the test reads.
type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (w *syncBuffer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.b.Write(p)
}

func (w *syncBuffer) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.b.String()
}

func TestMakeSpinnerFrames(t *testing.T) {
	frames := makeSpinnerFrames(4)
	want := []string{
		"•...", ".•..", "..•.", "...•",
		"...•", "..•.", ".•..", "•...",
	}
	if len(frames) != len(want) {
		t.Fatalf("expected %d frames, got %d", len(want), len(frames))
	}
	for i, f := range want {
		if frames[i] != f {
			t.Errorf("frame %d: expected %q, got %q", i, f, frames[i])
		}
	}
}

func TestSpinnerFramesFixedWidth(t *testing.T) {
	for _, frame := range makeSpinnerFrames(spinnerWidth) {
		if n := len([]rune(frame)); n != spinnerWidth {
			t.Errorf("frame %q has width %d, expected %d", frame, n, spinnerWidth)
		}
	}
}

func TestSpinnerErasesLineOnStop(t *testing.T) {
	buf := &syncBuffer{}
	s := newSpinner("Sending files ...")
	s.out = buf

	s.Start()
	time.Sleep(3 * spinnerInterval)
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "Sending files ...") {
		t.Errorf("expected at least one rendered frame, got %q", out)
	}
	if !strings.HasSuffix(out, clearLine) {
		t.Errorf("expected output to end with the erase sequence, got %q", out)
	}
}

func TestSpinnerStopBeforeFirstTick(t *testing.T) {
	buf := &syncBuffer{}
	s := newSpinner("working")
	s.out = buf

	s.Start()
	s.Stop()

	// Even with no frame rendered the line erase still runs.
	if out := buf.String(); !strings.HasSuffix(out, clearLine) {
		t.Errorf("expected erase sequence, got %q", out)
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner("working")
	s.out = &syncBuffer{}
	s.Start()
	s.Stop()
	s.Stop() // must not panic or block
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	s := newSpinner("working")
	s.out = &syncBuffer{}
	s.Stop() // must return instead of blocking on the never-started goroutine
}

func TestSpinnerStartIsIdempotent(t *testing.T) {
	buf := &syncBuffer{}
	s := newSpinner("working")
	s.out = buf
	s.Start()
	s.Start() // second Start must not spawn another goroutine
	s.Stop()
	if out := buf.String(); strings.Count(out, clearLine) > 1 {
		t.Errorf("expected a single animation goroutine, got output %q", out)
	}
}
