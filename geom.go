package ggbench

import "github.com/gogpu/gg"

// Rect is an axis-aligned rectangle given by its edges.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectXYWH returns the rectangle with origin (x, y) and size w x h.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the rectangle's width.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the rectangle's height.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Center returns the center point.
func (r Rect) Center() gg.Point {
	return gg.Pt((r.Left+r.Right)*0.5, (r.Top+r.Bottom)*0.5)
}

// Offset translates the rectangle by (dx, dy).
func (r *Rect) Offset(dx, dy float64) {
	r.Left += dx
	r.Right += dx
	r.Top += dy
	r.Bottom += dy
}

// OffsetTo moves the rectangle's origin to (x, y), keeping its size.
func (r *Rect) OffsetTo(x, y float64) {
	r.Offset(x-r.Left, y-r.Top)
}

// CenterAt moves the rectangle so that its center is p.
func (r *Rect) CenterAt(p gg.Point) {
	hw, hh := r.Width()*0.5, r.Height()*0.5
	r.Left, r.Right = p.X-hw, p.X+hw
	r.Top, r.Bottom = p.Y-hh, p.Y+hh
}

// Contains reports whether (x, y) lies inside the half-open rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// outside reports whether r lies entirely outside a width x height
// viewport anchored at the origin on at least one axis.
func (r Rect) outside(width, height float64) bool {
	return r.Right <= 0 || r.Left >= width || r.Bottom <= 0 || r.Top >= height
}
