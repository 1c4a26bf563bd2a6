package ggbench

import "github.com/gogpu/gg"

// SolidRectBenchName is the registry key of SolidRectBench.
const SolidRectBenchName = "SolidRectBench"

// Fixed budget of the solid rect bench.
const (
	solidRectInterval = 16_000 // µs per frame
	solidRectStep     = 400
)

// SolidRectBench is the linear-growth rectangle benchmark. It grows in
// proportion to the idle share of a fixed 16 ms budget, sprays from the
// screen center and stops once the average draw time uses the whole
// budget.
type SolidRectBench struct {
	params *Params
	pool   ShapePool
	render Renderer

	width    float64
	height   float64
	density  float64
	revision uint64

	active int
	frozen bool
	fps    float64
	timer  flushTimer
	status Status
	perf   PerfData
}

// NewSolidRectBench creates a solid rect bench sized by params.MaxCount.
func NewSolidRectBench(params *Params) *SolidRectBench {
	return &SolidRectBench{
		params: params,
		active: params.startCount(),
		timer:  newFlushTimer(FlushInterval),
	}
}

// Name implements Bench.
func (b *SolidRectBench) Name() string { return SolidRectBenchName }

// Draw implements Bench.
func (b *SolidRectBench) Draw(dc *gg.Context, host *Host) {
	b.init(host)
	b.flushStatus(host)
	b.grow(host.LastDrawTime())
	center := RectXYWH(0, 0, b.width, b.height).Center()
	animateShapes(&b.pool, b.active, b.width, b.height, center)
	b.render.DrawShapes(dc, b.pool.Shapes(b.active), GraphicRect)
	if b.params.ShowStatus && len(b.status.Lines) > 0 {
		b.render.DrawStatus(dc, b.status, b.width, b.density, host.Typeface(DefaultTypeface))
	}
}

func (b *SolidRectBench) init(host *Host) {
	w, h, d := float64(host.Width()), float64(host.Height()), host.Density()
	rev := b.params.Revision()
	if w == b.width && h == b.height && d == b.density && rev == b.revision && !host.IsFirstFrame() {
		return
	}
	b.width, b.height, b.density, b.revision = w, h, d, rev
	b.active = b.params.startCount()
	b.frozen = false
	b.fps = 0
	b.status = Status{}
	b.perf = PerfData{}
	b.pool.Init(b.params.MaxCount, d, false)
}

func (b *SolidRectBench) grow(lastDrawTime int64) {
	if b.frozen {
		return
	}
	idle := solidRectInterval - lastDrawTime
	if idle <= 0 {
		return
	}
	step := int(solidRectStep * idle / solidRectInterval)
	b.active = min(b.active+step, b.params.MaxCount)
}

func (b *SolidRectBench) flushStatus(host *Host) {
	now := host.Clock().Now()
	drawTime := host.AverageDrawTime()
	fps := host.CurrentFPS()
	if b.timer.due(now) && fps > 0 {
		b.fps = fps
		if !b.frozen && drawTime >= solidRectInterval {
			b.frozen = true
			Logger().Info("solid rect budget reached", "count", b.active, "avgDrawTime", drawTime)
		}
		b.status = formatStatus("Rects", fps, drawTime, b.active, b.frozen, 30)
		b.timer.fire(now)
	}
	b.perf = PerfData{
		FPS:       b.fps,
		DrawTime:  float64(drawTime) / 1000,
		DrawCount: b.active,
		Saturated: b.frozen,
	}
}

// ActiveCount returns the number of rectangles drawn per frame.
func (b *SolidRectBench) ActiveCount() int { return b.active }

// Saturated reports whether growth has stopped.
func (b *SolidRectBench) Saturated() bool { return b.frozen }

// Perf implements PerfSource.
func (b *SolidRectBench) Perf() PerfData { return b.perf }
