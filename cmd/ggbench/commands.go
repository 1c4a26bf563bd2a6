package main

import (
	"math"

	"github.com/gogpu/ggbench"
)

// commandKind is a host UI action.
type commandKind int

const (
	cmdQuit commandKind = iota
	cmdRestart
	cmdToggleStatus
	cmdNextBench
	cmdGraphic
	cmdRedraw
	cmdPointer
	cmdClick
	cmdAdjust
)

// Factors applied by the dashboard's parameter keys.
const (
	adjustUp   = 2.0
	adjustDown = 0.5
)

// command is sent from input goroutines to the frame loop, which applies
// it between frames.
type command struct {
	kind    commandKind
	graphic ggbench.GraphicType

	// x and y locate cmdPointer and cmdClick.
	x, y float64

	// param is scaled by factor for cmdAdjust.
	param  ggbench.ParamKind
	factor float64
}

// apply executes cmd on view and reports whether the loop should keep
// running.
func apply(view *ggbench.View, cmd command) bool {
	switch cmd.kind {
	case cmdQuit:
		return false
	case cmdRestart:
		view.Restart()
	case cmdToggleStatus:
		view.ShowStatus(!view.Host().Params().ShowStatus)
	case cmdNextBench:
		view.NextBench()
	case cmdGraphic:
		view.SetGraphicType(cmd.graphic)
	case cmdPointer:
		view.MouseMoved(cmd.x, cmd.y)
	case cmdClick:
		view.Click(cmd.x, cmd.y)
	case cmdAdjust:
		// Rejected values are logged by Params.Set; the run continues.
		_ = view.UpdateParam(cmd.param, adjusted(view.Host().Params(), cmd.param, cmd.factor))
	}
	return true
}

// adjusted returns the value of kind scaled by factor. Counts are
// rounded and kept at 1 or more.
func adjusted(p *ggbench.Params, kind ggbench.ParamKind, factor float64) float64 {
	switch kind {
	case ggbench.ParamTargetFPS:
		return p.TargetFPS * factor
	case ggbench.ParamStartCount:
		return max(1, math.Round(float64(p.StartCount)*factor))
	case ggbench.ParamStepCount:
		return max(1, math.Round(float64(p.StepCount)*factor))
	default:
		return max(1, math.Round(float64(p.MaxCount)*factor))
	}
}

// send queues cmd without blocking. Commands arriving while the queue is
// full are dropped.
func send(commands chan<- command, cmd command) {
	select {
	case commands <- cmd:
	default:
	}
}

// drain applies every pending command without blocking.
func drain(view *ggbench.View, commands <-chan command) bool {
	for {
		select {
		case cmd := <-commands:
			if !apply(view, cmd) {
				return false
			}
		default:
			return true
		}
	}
}
