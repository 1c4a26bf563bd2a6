package ggbench

import (
	"math"
	"testing"
)

// fakeClock is a manually advanced Clock.
type fakeClock struct {
	now int64
}

func (c *fakeClock) Now() int64 { return c.now }

func (c *fakeClock) Advance(us int64) { c.now += us }

func TestStatsWindow_FPSZeroUntilFull(t *testing.T) {
	w := NewStatsWindow()
	for i := 0; i < StatsWindowSize-1; i++ {
		w.RecordFrame(int64(i)*16_000, 5000)
		if fps := w.CurrentFPS(); fps != 0 {
			t.Fatalf("frame %d: CurrentFPS() = %v, want 0", i+1, fps)
		}
	}
	w.RecordFrame(int64(StatsWindowSize-1)*16_000, 5000)
	fps := w.CurrentFPS()
	if fps <= 0 || math.IsInf(fps, 0) || math.IsNaN(fps) {
		t.Fatalf("frame %d: CurrentFPS() = %v, want finite positive", StatsWindowSize, fps)
	}
	if want := 1_000_000.0 / 16_000; math.Abs(fps-want) > 1e-9 {
		t.Errorf("CurrentFPS() = %v, want %v", fps, want)
	}
}

func TestStatsWindow_Eviction(t *testing.T) {
	w := NewStatsWindow()
	for i := 0; i < 3*StatsWindowSize; i++ {
		w.RecordFrame(int64(i)*10_000, int64(i))
		if w.Len() > StatsWindowSize {
			t.Fatalf("Len() = %d exceeds %d", w.Len(), StatsWindowSize)
		}
	}
	if got := w.LastDrawTime(); got != 3*StatsWindowSize-1 {
		t.Errorf("LastDrawTime() = %d, want %d", got, 3*StatsWindowSize-1)
	}
	// The window holds draw times 120..179.
	first := int64(2 * StatsWindowSize)
	last := int64(3*StatsWindowSize - 1)
	if got, want := w.AverageDrawTime(), (first+last)/2; got != want {
		t.Errorf("AverageDrawTime() = %d, want %d", got, want)
	}
	if got := w.CurrentFPS(); math.Abs(got-100) > 1e-9 {
		t.Errorf("CurrentFPS() = %v, want 100", got)
	}
}

func TestStatsWindow_Empty(t *testing.T) {
	w := NewStatsWindow()
	if !w.IsFirstFrame() {
		t.Error("new window should be a first frame")
	}
	if got := w.AverageDrawTime(); got != 0 {
		t.Errorf("AverageDrawTime() = %d, want 0", got)
	}
	if got := w.LastDrawTime(); got != 0 {
		t.Errorf("LastDrawTime() = %d, want 0", got)
	}
}

func TestStatsWindow_Reset(t *testing.T) {
	w := NewStatsWindow()
	for i := 0; i < StatsWindowSize; i++ {
		w.RecordFrame(int64(i)*1000, 700)
	}
	if w.IsFirstFrame() {
		t.Fatal("IsFirstFrame() = true after recording")
	}
	w.Reset()
	if !w.IsFirstFrame() || w.Len() != 0 {
		t.Errorf("after Reset: IsFirstFrame=%v Len=%d", w.IsFirstFrame(), w.Len())
	}
	if w.CurrentFPS() != 0 || w.AverageDrawTime() != 0 {
		t.Error("statistics not cleared by Reset")
	}
}

func TestStatsWindow_ZeroSpan(t *testing.T) {
	w := NewStatsWindow()
	for i := 0; i < StatsWindowSize; i++ {
		w.RecordFrame(42, 1)
	}
	if got := w.CurrentFPS(); got != 0 {
		t.Errorf("CurrentFPS() with zero span = %v, want 0", got)
	}
}

func TestFlushTimer(t *testing.T) {
	ft := newFlushTimer(300)
	if ft.due(1000) {
		t.Fatal("first call should only arm the timer")
	}
	if ft.due(1300) {
		t.Error("due at exactly one interval, want strictly greater")
	}
	if !ft.due(1301) {
		t.Fatal("not due after one interval")
	}
	// Fired at 1750: 750 elapsed, remainder 150 carried over.
	ft.fire(1750)
	if ft.last != 1600 {
		t.Errorf("last = %d, want 1600", ft.last)
	}
	if !ft.due(1901) {
		t.Error("not due 301µs after carried-over start")
	}
}
