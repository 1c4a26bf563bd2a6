package ggbench

import "github.com/gogpu/gg"

// Bench is a drawable benchmark. Draw is called once per frame with the
// frame's drawing context; it advances the bench's own state and issues
// its draw calls.
type Bench interface {
	Name() string
	Draw(dc *gg.Context, host *Host)
}

// PerfData is the live readout a bench exposes to the host UI.
type PerfData struct {
	// FPS is the frame rate captured at the last status flush.
	FPS float64
	// DrawTime is the average draw time in milliseconds.
	DrawTime float64
	// DrawCount is the number of shapes drawn per frame.
	DrawCount int
	// Saturated reports whether growth has stopped.
	Saturated bool
}

// PerfSource is implemented by benches that report PerfData.
type PerfSource interface {
	Perf() PerfData
}

// DrawBench draws b inside a saved context state. Nil arguments are
// logged and the call is skipped.
func DrawBench(b Bench, dc *gg.Context, host *Host) {
	switch {
	case b == nil:
		Logger().Error("DrawBench: bench is nil")
		return
	case dc == nil:
		Logger().Error("DrawBench: context is nil", "bench", b.Name())
		return
	case host == nil:
		Logger().Error("DrawBench: host is nil", "bench", b.Name())
		return
	}
	dc.Push()
	defer dc.Pop()
	b.Draw(dc, host)
}
