package core

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEventLoop(t *testing.T) {
	loop := NewEventLoop(500)
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- loop.Run(ctx) }()

	ran := make(chan string, 8)
	loop.Post(func() {
		loop.RequestFrame(func() { ran <- "frame" })
		id := loop.RequestFrame(func() { ran <- "cancelled frame" })
		loop.CancelFrame(id)

		stop := loop.After(5*time.Millisecond, func() { ran <- "cancelled timer" })
		stop()
		loop.After(10*time.Millisecond, func() { ran <- "timer" })
	})

	got := map[string]bool{}
	deadline := time.After(2 * time.Second)
	for len(got) < 2 {
		select {
		case name := <-ran:
			got[name] = true
		case <-deadline:
			t.Fatalf("timed out, got %v", got)
		}
	}
	if !got["frame"] || !got["timer"] {
		t.Fatalf("unexpected callbacks %v", got)
	}

	select {
	case name := <-ran:
		t.Errorf("unexpected callback %q", name)
	case <-time.After(50 * time.Millisecond):
	}

	cancel()
	if err := <-errc; !errors.Is(err, context.Canceled) {
		t.Errorf("Run returned %v", err)
	}

	// posting after the loop stopped must not block
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			loop.Post(func() {})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Post blocked after Run returned")
	}
}

func TestEventLoopFrameRequestedDuringFrame(t *testing.T) {
	loop := NewEventLoop(1000)
	runs := 0
	var frame func()
	frame = func() {
		runs++
		loop.RequestFrame(frame)
	}
	loop.RequestFrame(frame)

	loop.runFrames()
	if runs != 1 {
		t.Fatalf("runs %d, want 1 per tick", runs)
	}
	loop.runFrames()
	if runs != 2 {
		t.Fatalf("runs %d, want 2", runs)
	}
}
