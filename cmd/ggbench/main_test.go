package main

import (
	"errors"
	"testing"

	"github.com/gogpu/ggbench"
)

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("parseFlags() = %v", err)
	}
	if cfg.width != ggbench.DefaultWidth || cfg.height != ggbench.DefaultHeight || cfg.density != 1 {
		t.Errorf("screen = %dx%d@%v", cfg.width, cfg.height, cfg.density)
	}
	if cfg.frontend != frontendWindow || cfg.tui || !cfg.status {
		t.Errorf("frontend=%q tui=%v status=%v", cfg.frontend, cfg.tui, cfg.status)
	}
	p, err := cfg.params()
	if err != nil {
		t.Fatalf("params() = %v", err)
	}
	if *p != *ggbench.DefaultParams() {
		t.Errorf("params() = %+v, want defaults", *p)
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-frontend=headless", "-tui", "-frames=120", "-graphic=star",
		"-max=5000", "-target-fps=30", "-status=false", "-bench=SolidRectBench",
	})
	if err != nil {
		t.Fatalf("parseFlags() = %v", err)
	}
	p, err := cfg.params()
	if err != nil {
		t.Fatalf("params() = %v", err)
	}
	if p.Graphic != ggbench.GraphicStar || p.MaxCount != 5000 || p.TargetFPS != 30 || p.ShowStatus {
		t.Errorf("params() = %+v", *p)
	}
	if cfg.frames != 120 || cfg.bench != ggbench.SolidRectBenchName {
		t.Errorf("frames=%d bench=%q", cfg.frames, cfg.bench)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown front end", []string{"-frontend=web"}},
		{"tui without headless", []string{"-tui"}},
		{"negative frames", []string{"-frontend=headless", "-frames=-1"}},
		{"unknown flag", []string{"-nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseFlags(tt.args); err == nil {
				t.Error("parseFlags() succeeded")
			}
		})
	}
}

func TestConfig_InvalidParams(t *testing.T) {
	tests := [][]string{
		{"-graphic=hexagon"},
		{"-target-fps=0"},
		{"-step=0"},
	}
	for _, args := range tests {
		cfg, err := parseFlags(args)
		if err != nil {
			t.Fatalf("parseFlags(%v) = %v", args, err)
		}
		if _, err := cfg.params(); !errors.Is(err, ggbench.ErrInvalidParam) {
			t.Errorf("params(%v) = %v, want ErrInvalidParam", args, err)
		}
	}
}

func TestNewView(t *testing.T) {
	cfg, err := parseFlags([]string{"-width=200", "-height=100", "-max=100", "-bench=SolidRectBench"})
	if err != nil {
		t.Fatal(err)
	}
	view, err := newView(cfg, nil)
	if err != nil {
		t.Fatalf("newView() = %v", err)
	}
	if view.Bench().Name() != ggbench.SolidRectBenchName {
		t.Errorf("Bench() = %q", view.Bench().Name())
	}
	if view.Host().Typeface(ggbench.DefaultTypeface) == nil {
		t.Error("default typeface not registered")
	}
	if w, h := view.Host().Width(), view.Host().Height(); w != 200 || h != 100 {
		t.Errorf("host size = %dx%d", w, h)
	}

	cfg.bench = "Missing"
	var nf *ggbench.BenchNotFoundError
	if _, err := newView(cfg, nil); !errors.As(err, &nf) {
		t.Errorf("newView(unknown bench) = %v", err)
	}
}
