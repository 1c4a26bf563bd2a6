package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gogpu/ggbench"
)

func TestFrameInterval(t *testing.T) {
	if got := frameInterval(50); got != 20*time.Millisecond {
		t.Errorf("frameInterval(50) = %v", got)
	}
	if got := frameInterval(1000); got != time.Millisecond {
		t.Errorf("frameInterval(1000) = %v", got)
	}
}

func TestRunLoop_FrameLimit(t *testing.T) {
	view := newTestView(t)
	surface := ggbench.NewContextSurface(nil, nil)
	if err := surface.Resize(160, 120); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = surface.Context().Close() })

	frames := runLoop(context.Background(), view, surface, time.Millisecond, 5, nil, nil)
	if frames != 5 || surface.Frames() != 5 {
		t.Errorf("frames = %d, presented %d, want 5", frames, surface.Frames())
	}
}

func TestRunLoop_StopsOnQuitAndCancel(t *testing.T) {
	view := newTestView(t)
	surface := ggbench.NewContextSurface(nil, nil)
	if err := surface.Resize(160, 120); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = surface.Context().Close() })

	commands := make(chan command, 1)
	commands <- command{kind: cmdQuit}
	done := make(chan int)
	go func() { done <- runLoop(context.Background(), view, surface, time.Hour, 0, commands, nil) }()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop ignored quit")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if frames := runLoop(ctx, view, surface, time.Hour, 0, nil, nil); frames != 0 {
		t.Errorf("cancelled loop drew %d frames", frames)
	}
}

func TestRunHeadless_WritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "last.png")
	cfg, err := parseFlags([]string{
		"-frontend=headless", "-width=64", "-height=48", "-max=100",
		"-target-fps=500", "-frames=3", "-output=" + out,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := runHeadless(context.Background(), cfg); err != nil {
		t.Fatalf("runHeadless() = %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output is empty")
	}
}
