package ggbench

import (
	"errors"

	"github.com/gogpu/gg"
)

// Surface is the drawing target a front end provides for one frame.
type Surface interface {
	// Lock returns the context to draw this frame into, or nil when no
	// surface is available; the frame is then skipped.
	Lock() *gg.Context
	// Present submits the frame. It is only called after a successful Lock.
	Present() error
}

// View drives the benches for one front end. Front ends call Draw once
// per display refresh and forward input and host UI commands to the
// other methods, all from the same goroutine.
type View struct {
	host     *Host
	benches  []Bench
	index    int
	reporter *Reporter
}

// ViewOption configures a View during creation.
type ViewOption func(*View)

// WithReporter installs a throttled callback receiving PerfData.
func WithReporter(fn func(PerfData)) ViewOption {
	return func(v *View) { v.reporter = NewReporter(fn) }
}

// WithBenchIndex selects the bench drawn first.
func WithBenchIndex(index int) ViewOption {
	return func(v *View) { v.index = index }
}

// errNoBenches is returned by NewView for an empty registry.
var errNoBenches = errors.New("ggbench: registry has no benches")

// NewView instantiates every bench of reg against the host's
// configuration.
func NewView(host *Host, reg *Registry, opts ...ViewOption) (*View, error) {
	if reg == nil || reg.Len() == 0 {
		return nil, errNoBenches
	}
	v := &View{host: host}
	for i := range reg.Len() {
		b, err := reg.NewAt(i, host.Params())
		if err != nil {
			return nil, err
		}
		v.benches = append(v.benches, b)
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.index < 0 || v.index >= len(v.benches) {
		v.index = 0
	}
	return v, nil
}

// Host returns the view's host state.
func (v *View) Host() *Host { return v.host }

// Bench returns the bench drawn by the next frame.
func (v *View) Bench() Bench { return v.benches[v.index] }

// BenchIndex returns the index of the current bench.
func (v *View) BenchIndex() int { return v.index }

// UpdateSize forwards the surface size and density to the host. It
// returns true when size-dependent front end state must be invalidated.
func (v *View) UpdateSize(width, height int, density float64) bool {
	return v.host.UpdateScreen(width, height, density)
}

// MouseMoved records the pointer position in pixels.
func (v *View) MouseMoved(x, y float64) { v.host.MouseMoved(x, y) }

// MouseLeft records that the pointer left the surface.
func (v *View) MouseLeft() { v.host.MouseLeft() }

// Click moves the pointer to (x, y), restarts the run and switches to the
// next bench.
func (v *View) Click(x, y float64) {
	v.host.MouseMoved(x, y)
	v.NextBench()
}

// NextBench restarts the run on the next registered bench.
func (v *View) NextBench() {
	v.host.ResetFrames()
	v.index = (v.index + 1) % len(v.benches)
	Logger().Debug("bench switched", "bench", v.Bench().Name())
}

// Restart clears the frame statistics; the current bench starts a new run
// from the configured start count on the next frame.
func (v *View) Restart() {
	v.host.ResetFrames()
}

// UpdateParam changes one tunable and restarts the run. Invalid values
// are rejected without side effects.
func (v *View) UpdateParam(kind ParamKind, value float64) error {
	if err := v.host.Params().Set(kind, value); err != nil {
		return err
	}
	v.host.ResetFrames()
	return nil
}

// SetGraphicType switches the drawn shape kind and restarts the run.
func (v *View) SetGraphicType(t GraphicType) {
	v.host.Params().SetGraphic(t)
	v.host.ResetFrames()
}

// ShowStatus shows or hides the status overlay.
func (v *View) ShowStatus(show bool) {
	v.host.Params().SetShowStatus(show)
}

// Perf returns the current bench's live readout.
func (v *View) Perf() PerfData {
	if src, ok := v.Bench().(PerfSource); ok {
		return src.Perf()
	}
	return PerfData{}
}

// Draw renders one frame into s. It returns false when the frame was
// skipped because no drawing context was available. The recorded draw
// time excludes Present, which may block on vsync.
func (v *View) Draw(s Surface) bool {
	clock := v.host.Clock()
	start := clock.Now()
	if s == nil {
		return false
	}
	dc := s.Lock()
	if dc == nil {
		Logger().Debug("frame skipped: no surface")
		return false
	}
	dc.ClearWithColor(gg.White)
	DrawBench(v.Bench(), dc, v.host)
	v.reporter.Update(clock.Now(), v.Perf())

	drawTime := clock.Now() - start
	if err := s.Present(); err != nil {
		Logger().Warn("present failed", "err", err)
	}
	v.host.RecordFrame(drawTime)
	return true
}
