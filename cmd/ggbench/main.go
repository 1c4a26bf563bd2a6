// Command ggbench runs the adaptive particle benchmark against the gg 2D
// graphics library.
//
// By default it opens a window and grows the number of animated shapes
// until the frame rate drops below the target. With -frontend=headless it
// renders offscreen at the target frame rate, optionally with a terminal
// dashboard (-tui).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/ggbench"
)

const (
	frontendWindow   = "window"
	frontendHeadless = "headless"
)

// config holds the parsed command line.
type config struct {
	width     int
	height    int
	density   float64
	targetFPS float64
	start     int
	step      int
	max       int
	graphic   string
	bench     string
	status    bool
	font      string
	image     string
	frontend  string
	tui       bool
	frames    int
	output    string
	verbose   bool
}

func parseFlags(args []string) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("ggbench", flag.ContinueOnError)
	fs.IntVar(&cfg.width, "width", ggbench.DefaultWidth, "surface width in pixels")
	fs.IntVar(&cfg.height, "height", ggbench.DefaultHeight, "surface height in pixels")
	fs.Float64Var(&cfg.density, "density", ggbench.DefaultDensity, "physical pixels per logical pixel (>= 1)")
	fs.Float64Var(&cfg.targetFPS, "target-fps", ggbench.DefaultTargetFPS, "frame rate to sustain")
	fs.IntVar(&cfg.start, "start", ggbench.DefaultStartCount, "active shapes at the start of a run")
	fs.IntVar(&cfg.step, "step", ggbench.DefaultStepCount, "undamped growth per frame")
	fs.IntVar(&cfg.max, "max", ggbench.DefaultMaxCount, "shape pool capacity")
	fs.StringVar(&cfg.graphic, "graphic", ggbench.GraphicRect.String(), "shape kind: rect, circle, rrect, oval, blend, star")
	fs.StringVar(&cfg.bench, "bench", ggbench.ParticleBenchName, "bench drawn first")
	fs.BoolVar(&cfg.status, "status", true, "draw the status overlay")
	fs.StringVar(&cfg.font, "font", "", "overlay font file (default: embedded Go Regular)")
	fs.StringVar(&cfg.image, "image", "", "image registered as the bridge resource")
	fs.StringVar(&cfg.frontend, "frontend", frontendWindow, "front end: window or headless")
	fs.BoolVar(&cfg.tui, "tui", false, "show a terminal dashboard (headless only)")
	fs.IntVar(&cfg.frames, "frames", 0, "stop after this many frames (headless, 0 = until interrupted)")
	fs.StringVar(&cfg.output, "output", "", "write the last frame to this PNG file (headless)")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.frontend != frontendWindow && cfg.frontend != frontendHeadless {
		return nil, fmt.Errorf("unknown front end %q", cfg.frontend)
	}
	if cfg.tui && cfg.frontend != frontendHeadless {
		return nil, errors.New("-tui requires -frontend=headless")
	}
	if cfg.frames < 0 {
		return nil, fmt.Errorf("-frames must not be negative, got %d", cfg.frames)
	}
	return cfg, nil
}

// params builds the benchmark configuration from the flags.
func (c *config) params() (*ggbench.Params, error) {
	graphic, err := ggbench.ParseGraphicType(c.graphic)
	if err != nil {
		return nil, err
	}
	return ggbench.NewParams(
		ggbench.WithTargetFPS(c.targetFPS),
		ggbench.WithStartCount(c.start),
		ggbench.WithStepCount(c.step),
		ggbench.WithMaxCount(c.max),
		ggbench.WithGraphic(graphic),
		ggbench.WithStatus(c.status),
	)
}

func newLogger(verbose bool, tui bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if tui {
		// The dashboard owns the terminal.
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newView wires the host, its resources and the bench registry.
func newView(cfg *config, report func(ggbench.PerfData)) (*ggbench.View, error) {
	params, err := cfg.params()
	if err != nil {
		return nil, err
	}
	host := ggbench.NewHost(cfg.width, cfg.height, cfg.density, ggbench.WithParams(params))
	if err := ggbench.RegisterResources(host, cfg.font, cfg.image); err != nil {
		// The overlay falls back to the bar without text.
		slog.Warn("resources not loaded", "err", err)
	}

	reg := ggbench.DefaultRegistry()
	index := reg.IndexOf(cfg.bench)
	if index < 0 {
		return nil, &ggbench.BenchNotFoundError{Name: cfg.bench}
	}
	return ggbench.NewView(host, reg,
		ggbench.WithBenchIndex(index),
		ggbench.WithReporter(report))
}

func run(args []string) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.verbose, cfg.tui)
	slog.SetDefault(logger)
	ggbench.SetLogger(logger)

	switch cfg.frontend {
	case frontendHeadless:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runHeadless(ctx, cfg)
	default:
		return runWindow(cfg)
	}
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error("ggbench failed", "err", err)
		os.Exit(1)
	}
}
