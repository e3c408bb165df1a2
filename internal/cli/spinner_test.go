package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerBasic(t *testing.T) {
	s := newSpinner(context.Background(), "Computing layout...")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner(context.Background(), "Computing layout...")
	s.Start()

	// Repeated stops must not panic.
	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinner(ctx, "Computing layout...")
	s.Start()

	cancel()
	time.Sleep(100 * time.Millisecond)

	// The animation goroutine has exited; Stop must still return cleanly.
	s.Stop()
}

func TestSpinnerStopWithError(t *testing.T) {
	s := newSpinner(context.Background(), "Computing layout...")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithError("roster unreadable")
}
