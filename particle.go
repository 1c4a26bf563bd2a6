package ggbench

import "github.com/gogpu/gg"

// ParticleBenchName is the registry key of ParticleBench.
const ParticleBenchName = "ParticleBench"

// ParticleBench is the adaptive particle benchmark: a fountain of moving
// shapes anchored at the pointer whose size grows until the renderer can
// no longer hold the target frame rate.
type ParticleBench struct {
	params *Params
	pool   ShapePool
	ctrl   *Controller
	render Renderer

	width    float64
	height   float64
	density  float64
	revision uint64
	marker   Rect
	perf     PerfData
}

// NewParticleBench creates a particle bench driven by params.
func NewParticleBench(params *Params) *ParticleBench {
	return &ParticleBench{
		params: params,
		ctrl:   NewController(params),
	}
}

// Name implements Bench.
func (b *ParticleBench) Name() string { return ParticleBenchName }

// Draw implements Bench.
func (b *ParticleBench) Draw(dc *gg.Context, host *Host) {
	b.init(host)
	b.animate(host)
	b.render.DrawShapes(dc, b.pool.Shapes(b.ctrl.ActiveCount()), b.params.Graphic)
	b.render.DrawMarker(dc, b.marker)
	b.drawStatus(dc, host)
}

// init restarts the run when the screen, the configuration or the frame
// statistics were reset, and regenerates the pool if its shape changed.
// It is cheap when nothing changed.
func (b *ParticleBench) init(host *Host) {
	w, h, d := float64(host.Width()), float64(host.Height()), host.Density()
	rev := b.params.Revision()
	if w == b.width && h == b.height && d == b.density && rev == b.revision && !host.IsFirstFrame() {
		return
	}
	b.width, b.height, b.density, b.revision = w, h, d, rev
	b.ctrl.Reset()
	b.perf = PerfData{}
	b.marker = RectXYWH(0, 0, markerSize*d, markerSize*d)
	if b.pool.Init(b.params.MaxCount, d, b.params.Graphic == GraphicOval) {
		b.render.Reset(b.pool.Len())
	}
	Logger().Debug("particle run started",
		"width", w, "height", h, "density", d,
		"graphic", b.params.Graphic.String(), "start", b.ctrl.ActiveCount())
}

func (b *ParticleBench) animate(host *Host) {
	b.ctrl.Grow(host.LastDrawTime())
	spawn := SpawnPoint(b.width, b.height, host.Pointer())
	b.marker.CenterAt(spawn)
	b.ctrl.Animate(&b.pool, b.width, b.height, spawn)
}

func (b *ParticleBench) drawStatus(dc *gg.Context, host *Host) {
	b.ctrl.Flush(host.Clock().Now(), host.CurrentFPS(), host.AverageDrawTime())
	b.perf = PerfData{
		FPS:       b.ctrl.FPS(),
		DrawTime:  float64(host.AverageDrawTime()) / 1000,
		DrawCount: b.ctrl.ActiveCount(),
		Saturated: b.ctrl.Saturated(),
	}
	if !b.params.ShowStatus {
		return
	}
	b.render.DrawStatus(dc, b.ctrl.Status(), b.width, b.density, host.Typeface(DefaultTypeface))
}

// Perf implements PerfSource.
func (b *ParticleBench) Perf() PerfData { return b.perf }

// Controller exposes the bench's state machine.
func (b *ParticleBench) Controller() *Controller { return b.ctrl }

// Pool exposes the bench's shape pool.
func (b *ParticleBench) Pool() *ShapePool { return &b.pool }

// Marker returns the spawn marker rectangle.
func (b *ParticleBench) Marker() Rect { return b.marker }
