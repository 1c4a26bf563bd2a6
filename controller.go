package ggbench

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// FlushInterval is the status and report cadence in microseconds.
const FlushInterval = 300_000

// saturationSlack is how far below the target the measured frame rate
// must fall, and budgetSlack how close to the frame budget (µs) the
// average draw time must come, before growth stops.
const (
	saturationSlack = 0.5
	budgetSlack     = 2000
)

// Status overlay colors.
var (
	statusGreen  = gg.RGB(0, 1, 0)
	statusYellow = gg.RGB(1, 1, 0)
	statusRed    = gg.RGB(0.91, 0.31, 0.28)
)

// ControllerState is the phase of an adaptive run.
type ControllerState int

// Controller states.
const (
	// Growing adds shapes every frame while the renderer keeps up.
	Growing ControllerState = iota
	// Saturated freezes the active count until the next reset.
	Saturated
)

func (s ControllerState) String() string {
	if s == Saturated {
		return "saturated"
	}
	return "growing"
}

// Status is the formatted readout refreshed on every flush.
type Status struct {
	Lines []string
	Color gg.RGBA
}

// Controller is the adaptive load state machine. Each frame it grows the
// number of active shapes according to the headroom left by the previous
// frame, animates the active shapes, and on a fixed cadence decides
// whether the renderer has saturated.
type Controller struct {
	params *Params
	state  ControllerState
	active int
	fps    float64
	timer  flushTimer
	status Status
}

// NewController creates a controller reading its tunables from params.
func NewController(params *Params) *Controller {
	c := &Controller{
		params: params,
		timer:  newFlushTimer(FlushInterval),
	}
	c.Reset()
	return c
}

// Reset starts a new run from the configured start count.
func (c *Controller) Reset() {
	c.state = Growing
	c.active = c.params.startCount()
	c.fps = 0
	c.status = Status{}
}

// State returns the current phase.
func (c *Controller) State() ControllerState { return c.state }

// Saturated reports whether growth has stopped.
func (c *Controller) Saturated() bool { return c.state == Saturated }

// ActiveCount returns the number of shapes animated and drawn per frame.
func (c *Controller) ActiveCount() int { return c.active }

// FPS returns the frame rate captured at the last flush.
func (c *Controller) FPS() float64 { return c.fps }

// Status returns the readout captured at the last flush.
func (c *Controller) Status() Status { return c.status }

// Grow adds shapes for the next frame given the previous frame's draw
// time in microseconds. Growth is damped by the idle share of the frame
// budget, quadratically once less than half of the budget is idle.
func (c *Controller) Grow(lastDrawTime int64) {
	if c.state == Saturated {
		return
	}
	half := 500_000 / c.params.TargetFPS
	drawTime := float64(lastDrawTime)
	idle := 2*half - drawTime
	if idle <= 0 {
		return
	}
	var factor float64
	if idle > half {
		factor = drawTime / half
	} else {
		factor = idle / half
		factor *= factor
	}
	step := int(math.Round(float64(c.params.StepCount) * factor))
	c.active = min(c.active+step, c.params.MaxCount)
}

// Animate moves the active shapes of pool by their velocity. A shape that
// ends up entirely outside the width x height viewport is re-centred on
// spawn, keeping its size and velocity.
func (c *Controller) Animate(pool *ShapePool, width, height float64, spawn gg.Point) {
	animateShapes(pool, c.active, width, height, spawn)
}

func animateShapes(pool *ShapePool, active int, width, height float64, spawn gg.Point) {
	n := min(active, pool.Len())
	for i := range n {
		s := pool.At(i)
		s.Bounds.Offset(s.VX, s.VY)
		if s.Bounds.outside(width, height) {
			s.Bounds.CenterAt(spawn)
		}
	}
}

// Flush runs the status cycle if FlushInterval has elapsed since the last
// one: it captures fps, evaluates the saturation rule and refreshes the
// status lines. Nothing happens while fps is still 0. Flush reports
// whether the cycle ran.
func (c *Controller) Flush(now int64, fps float64, avgDrawTime int64) bool {
	if !c.timer.due(now) || fps <= 0 {
		return false
	}
	c.fps = fps
	if c.state == Growing && c.overBudget(fps, avgDrawTime) {
		c.state = Saturated
		Logger().Info("saturation reached",
			"count", c.active, "fps", fps, "avgDrawTime", avgDrawTime)
	}
	c.status = formatStatus("Count", fps, avgDrawTime, c.active, c.Saturated(), 29)
	c.timer.fire(now)
	return true
}

func (c *Controller) overBudget(fps float64, avgDrawTime int64) bool {
	target := c.params.TargetFPS
	if c.active >= c.params.MaxCount {
		return true
	}
	return fps < target-saturationSlack && float64(avgDrawTime) > 1_000_000/target-budgetSlack
}

// SpawnPoint returns the pointer if it lies inside the width x height
// viewport, else the viewport center.
func SpawnPoint(width, height float64, pointer gg.Point) gg.Point {
	screen := RectXYWH(0, 0, width, height)
	if screen.Contains(pointer.X, pointer.Y) {
		return pointer
	}
	return screen.Center()
}

// formatStatus builds the three overlay columns. The count is bracketed
// once growth has stopped.
func formatStatus(label string, fps float64, drawTime int64, count int, frozen bool, yellowAbove float64) Status {
	countInfo := fmt.Sprint(count)
	if frozen {
		countInfo = "[" + countInfo + "]"
	}
	return Status{
		Lines: []string{
			fmt.Sprintf("FPS: %.1f", fps),
			fmt.Sprintf("Time: %.1f", float64(drawTime)/1000),
			label + ": " + countInfo,
		},
		Color: statusColor(fps, yellowAbove),
	}
}

func statusColor(fps, yellowAbove float64) gg.RGBA {
	switch {
	case fps > 59:
		return statusGreen
	case fps > yellowAbove:
		return statusYellow
	default:
		return statusRed
	}
}
