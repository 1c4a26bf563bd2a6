package ggbench

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestRect_CenterAt(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		p    gg.Point
	}{
		{"square", RectXYWH(-20, -20, 17.003, 17.003), gg.Pt(50, 50)},
		{"oval", RectXYWH(900, -5, 12.5, 7.25), gg.Pt(400, 300)},
		{"fractional", RectXYWH(-1e4, 3e3, 0.1, 0.3), gg.Pt(0.7, 123.456)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.r
			r.CenterAt(tt.p)
			if c := r.Center(); math.Abs(c.X-tt.p.X) > 1e-12 || math.Abs(c.Y-tt.p.Y) > 1e-12 {
				t.Errorf("Center() = %v, want %v", c, tt.p)
			}
			if d := r.Width() - tt.r.Width(); math.Abs(d) > 1e-12 {
				t.Errorf("width changed by %v", d)
			}
		})
	}
}
