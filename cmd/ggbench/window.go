package main

import (
	"log/slog"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // Register GPU accelerator
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggbench"
)

// canvasSurface presents a ggcanvas into the window's current frame.
type canvasSurface struct {
	canvas *ggcanvas.Canvas
	target *gogpu.Context
}

func (s *canvasSurface) Lock() *gg.Context {
	if s.canvas == nil {
		return nil
	}
	return s.canvas.Context()
}

func (s *canvasSurface) Present() error {
	s.canvas.MarkDirty()
	return s.canvas.RenderTo(s.target.AsTextureDrawer())
}

// runWindow opens a window and draws one benchmark frame per vsync.
func runWindow(cfg *config) error {
	printer := newPrinter()

	var view *ggbench.View
	view, err := newView(cfg, func(d ggbench.PerfData) {
		slog.Info(formatReport(printer, view.Bench().Name(), d))
	})
	if err != nil {
		return err
	}

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle("ggbench").
		WithSize(cfg.width, cfg.height).
		WithContinuousRender(false))

	// Input callbacks only queue commands; the draw callback applies them.
	commands := make(chan command, 64)
	surface := &canvasSurface{}
	var anim *gogpu.AnimationToken

	app.OnDraw(func(dc *gogpu.Context) {
		if anim == nil {
			anim = app.StartAnimation()
			slog.Info("window run started", "bench", view.Bench().Name())
		}
		drain(view, commands)

		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}
		if surface.canvas == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			canvas, err := ggcanvas.New(provider, w, h)
			if err != nil {
				slog.Error("canvas creation failed", "err", err)
				return
			}
			surface.canvas = canvas
		}
		view.UpdateSize(w, h, cfg.density)
		if cw, ch := surface.canvas.Size(); cw != w || ch != h {
			if err := surface.canvas.Resize(w, h); err != nil {
				slog.Warn("canvas resize failed", "err", err)
			}
		}
		surface.target = dc
		view.Draw(surface)
	})

	events := app.EventSource()
	events.OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if key == gpucontext.KeySpace {
			send(commands, command{kind: cmdToggleStatus})
		}
	})
	events.OnMouseMove(func(x, y float64) {
		send(commands, command{kind: cmdPointer, x: x, y: y})
	})
	// Any button restarts on the next bench at the pressed position.
	events.OnMousePress(func(_ gpucontext.MouseButton, x, y float64) {
		send(commands, command{kind: cmdClick, x: x, y: y})
	})

	app.OnClose(func() {
		if anim != nil {
			anim.Stop()
		}
		if surface.canvas != nil {
			_ = surface.canvas.Close()
		}
		gg.CloseAccelerator()
		perf := view.Perf()
		slog.Info("window run finished", "result", formatReport(printer, view.Bench().Name(), perf))
	})

	return app.Run()
}
