package main

import (
	"testing"

	"github.com/gogpu/ggbench"
)

func TestFormatReport(t *testing.T) {
	p := newPrinter()
	tests := []struct {
		data ggbench.PerfData
		want string
	}{
		{
			ggbench.PerfData{FPS: 59.96, DrawTime: 4.25, DrawCount: 12500},
			"ParticleBench: 60.0 fps, 4.25 ms, 12,500 shapes, growing",
		},
		{
			ggbench.PerfData{FPS: 41.5, DrawTime: 20, DrawCount: 1234567, Saturated: true},
			"ParticleBench: 41.5 fps, 20.00 ms, 1,234,567 shapes, saturated",
		},
	}
	for _, tt := range tests {
		if got := formatReport(p, ggbench.ParticleBenchName, tt.data); got != tt.want {
			t.Errorf("formatReport() = %q, want %q", got, tt.want)
		}
	}
}
