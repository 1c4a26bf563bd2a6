package ggbench

import (
	"strings"
	"testing"

	"github.com/gogpu/gg"
)

type countingBench struct {
	draws int
}

func (b *countingBench) Name() string { return "counting" }

func (b *countingBench) Draw(dc *gg.Context, _ *Host) {
	b.draws++
	dc.Translate(1000, 1000)
}

func TestDrawBench(t *testing.T) {
	dc := newWhiteContext(t, 10, 10)
	host := NewHost(10, 10, 1)
	b := &countingBench{}

	DrawBench(b, dc, host)
	if b.draws != 1 {
		t.Fatalf("draws = %d, want 1", b.draws)
	}
	dc.SetRGBA(0, 0, 0, 1)
	dc.DrawRectangle(0, 0, 10, 10)
	_ = dc.Fill()
	if cr, _, _ := rgb8(dc, 5, 5); cr != 0 {
		t.Error("bench transform leaked out of DrawBench")
	}
}

func TestDrawBench_NilArguments(t *testing.T) {
	logs := captureLogs(t)
	dc := newWhiteContext(t, 10, 10)
	host := NewHost(10, 10, 1)
	b := &countingBench{}

	DrawBench(nil, dc, host)
	DrawBench(b, nil, host)
	DrawBench(b, dc, nil)
	if b.draws != 0 {
		t.Errorf("draws = %d, want 0", b.draws)
	}
	if n := strings.Count(logs.String(), "DrawBench:"); n != 3 {
		t.Errorf("logged %d errors, want 3:\n%s", n, logs.String())
	}
}
