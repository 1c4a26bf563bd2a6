package ggbench

import "testing"

func newSolidRectFixture(t *testing.T, drawCost int64, params *Params) (*viewFixture, *SolidRectBench) {
	t.Helper()
	f := newViewFixture(t, drawCost, params, WithBenchIndex(1))
	b, ok := f.view.Bench().(*SolidRectBench)
	if !ok {
		t.Fatalf("bench 1 is %T", f.view.Bench())
	}
	return f, b
}

func TestSolidRectBench_LinearGrowth(t *testing.T) {
	f, b := newSolidRectFixture(t, 8000, newTestParams(t, WithMaxCount(100_000)))
	// The whole budget counts as idle before the first frame is timed.
	f.run(t, 1)
	if b.ActiveCount() != 401 {
		t.Fatalf("after frame 1 ActiveCount() = %d, want 401", b.ActiveCount())
	}
	f.run(t, 4)
	// Half of the 16ms budget is idle: 200 rects per frame.
	if got := b.ActiveCount(); got != 401+4*200 {
		t.Errorf("ActiveCount() = %d, want %d", got, 401+4*200)
	}
}

func TestSolidRectBench_FreezesAtBudget(t *testing.T) {
	f, b := newSolidRectFixture(t, 16_000, newTestParams(t, WithStartCount(500), WithMaxCount(10_000)))
	f.run(t, 60)
	if b.Saturated() {
		t.Fatal("froze before fps was available")
	}
	f.run(t, 1)
	if !b.Saturated() {
		t.Fatal("not frozen once the average draw time used the budget")
	}
	// Only the untimed first frame grew.
	if b.ActiveCount() != 900 {
		t.Errorf("ActiveCount() = %d, want 900", b.ActiveCount())
	}
	perf := f.view.Perf()
	if !perf.Saturated || perf.DrawCount != 900 || perf.DrawTime != 16 {
		t.Errorf("Perf() = %+v", perf)
	}
	if len(b.status.Lines) != 3 || b.status.Lines[2] != "Rects: [900]" {
		t.Errorf("status = %q", b.status.Lines)
	}
}

func TestSolidRectBench_ClampsAtMax(t *testing.T) {
	f, b := newSolidRectFixture(t, 1000, newTestParams(t, WithMaxCount(900)))
	f.run(t, 20)
	if b.ActiveCount() != 900 {
		t.Errorf("ActiveCount() = %d, want 900", b.ActiveCount())
	}
}
