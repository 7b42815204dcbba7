package main

import (
	"errors"
	"testing"
	"time"
)

func newTestSpinner() *spinner {
	s := newSpinner("test")
	s.out = &syncBuffer{}
	return s
}

func TestRunSupervisedPropagatesError(t *testing.T) {
	bang := errors.New("send failed")
	spin := newTestSpinner()

	if err := runSupervised(func() error { return bang }, spin); !errors.Is(err, bang) {
		t.Fatalf("expected the work error, got %v", err)
	}

	select {
	case <-spin.done:
	default:
		t.Errorf("spinner should be stopped after the work settles")
	}
}

func TestRunSupervisedNilError(t *testing.T) {
	spin := newTestSpinner()
	if err := runSupervised(func() error { return nil }, spin); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	select {
	case <-spin.done:
	default:
		t.Errorf("spinner should be stopped after the work settles")
	}
}

func TestRunSupervisedCancelsOnlyAfterSettlement(t *testing.T) {
	spin := newTestSpinner()
	release := make(chan struct{})
	finished := make(chan error, 1)

	go func() {
		finished <- runSupervised(func() error {
			<-release
			return nil
		}, spin)
	}()

	// While the work is pending the animation must keep running.
	time.Sleep(2 * spinnerInterval)
	select {
	case <-spin.done:
		t.Fatal("spinner cancelled before the work settled")
	default:
	}

	close(release)
	select {
	case err := <-finished:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("runSupervised did not return after the work settled")
	}

	select {
	case <-spin.done:
	case <-time.After(time.Second):
		t.Fatal("spinner not cancelled after the work settled")
	}
}
