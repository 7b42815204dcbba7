package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	spinnerWidth    = 10
	spinnerInterval = 100 * time.Millisecond
	clearLine       = "\r\033[K"
)

// makeSpinnerFrames builds the ping-pong frame cycle: a marker sweeps
// rightward through a dot field of the given width, then sweeps back
// leftward. The two halves concatenate into one repeating cycle.
func makeSpinnerFrames(width int) []string {
	frames := make([]string, 0, 2*width)
	for i := 0; i < width; i++ {
		frames = append(frames, strings.Repeat(".", i)+"•"+strings.Repeat(".", width-i-1))
	}
	for i := width - 1; i >= 0; i-- {
		frames = append(frames, strings.Repeat(".", i)+"•"+strings.Repeat(".", width-i-1))
	}
	return frames
}

// spinner re-renders a single terminal line with a moving marker while a
// blocking operation runs elsewhere. The line is erased on every exit path,
// so the terminal is left as it was before Start.
type spinner struct {
	message string
	frames  []string
	out     io.Writer
	stop    chan struct{}
	done    chan struct{}
	started bool
	once    sync.Once
}

// newSpinner creates a spinner with the given trailing message, writing to
// stdout. Call Start to begin animating.
func newSpinner(message string) *spinner {
	return &spinner{
		message: message,
		frames:  makeSpinnerFrames(spinnerWidth),
		out:     os.Stdout,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start launches the animation in a background goroutine. Cancellation is
// observed at the tick: a Stop during the sleep interval takes effect
// immediately instead of waiting out the remainder. Calling Start twice is
// a no-op.
func (s *spinner) Start() {
	if s.started {
		return
	}
	s.started = true
	go func() {
		defer close(s.done)
		defer fmt.Fprint(s.out, clearLine)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()
		i := 0
		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				fmt.Fprintf(s.out, "\r%s %s", s.frames[i%len(s.frames)], s.message)
				i++
			}
		}
	}()
}

// Stop cancels the animation and blocks until the goroutine has erased its
// line and exited. Safe to call more than once, and a no-op if the spinner
// was never started.
func (s *spinner) Stop() {
	s.once.Do(func() {
		close(s.stop)
		if s.started {
			<-s.done
		}
	})
}
