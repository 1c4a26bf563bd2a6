package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/ggbench"
)

// frameInterval returns the pacing interval for fps frames per second.
func frameInterval(fps float64) time.Duration {
	return time.Duration(float64(time.Second) / fps)
}

// runHeadless renders into an offscreen context at the target frame rate
// until ctx is done, cfg.frames frames were drawn or the dashboard quits.
func runHeadless(ctx context.Context, cfg *config) error {
	printer := newPrinter()

	var dash *dashboard
	if cfg.tui {
		screen, err := openScreen()
		if err != nil {
			return fmt.Errorf("terminal dashboard: %w", err)
		}
		dash = newDashboard(screen, printer)
		defer dash.close()
	}

	var view *ggbench.View
	view, err := newView(cfg, func(d ggbench.PerfData) {
		if dash != nil {
			dash.update(d)
			return
		}
		slog.Info(formatReport(printer, view.Bench().Name(), d))
	})
	if err != nil {
		return err
	}

	surface := ggbench.NewContextSurface(nil, nil)
	host := view.Host()
	if err := surface.Resize(host.Width(), host.Height()); err != nil {
		return err
	}
	defer surface.Context().Close()

	var commands <-chan command
	if dash != nil {
		commands = dash.commands()
		dash.draw(view)
	}

	slog.Info("headless run started",
		"bench", view.Bench().Name(), "width", host.Width(), "height", host.Height(),
		"graphic", host.Params().Graphic.String(), "frames", cfg.frames)

	frames := runLoop(ctx, view, surface, frameInterval(host.Params().TargetFPS), cfg.frames, commands, dash)

	perf := view.Perf()
	slog.Info("headless run finished", "frames", frames,
		"result", formatReport(printer, view.Bench().Name(), perf))

	if cfg.output != "" {
		if err := surface.Context().SavePNG(cfg.output); err != nil {
			return fmt.Errorf("save %s: %w", cfg.output, err)
		}
		slog.Info("last frame saved", "path", cfg.output)
	}
	return nil
}

// runLoop draws one frame per tick and applies commands between frames.
// A limit of 0 runs until ctx is done or a quit command arrives. A
// change of the target frame rate re-paces the loop. It returns the
// number of frames drawn.
func runLoop(ctx context.Context, view *ggbench.View, surface ggbench.Surface,
	interval time.Duration, limit int, commands <-chan command, dash *dashboard) int {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	targetFPS := view.Host().Params().TargetFPS

	frames := 0
	for limit == 0 || frames < limit {
		select {
		case <-ctx.Done():
			return frames
		case cmd, ok := <-commands:
			if !ok {
				commands = nil
				continue
			}
			if !apply(view, cmd) {
				return frames
			}
			if fps := view.Host().Params().TargetFPS; fps != targetFPS {
				targetFPS = fps
				ticker.Reset(frameInterval(fps))
			}
			if dash != nil {
				dash.draw(view)
			}
		case <-ticker.C:
			if view.Draw(surface) {
				frames++
			}
			if dash != nil && dash.dirty() {
				dash.draw(view)
			}
		}
	}
	return frames
}
