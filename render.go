package ggbench

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Overlay metrics in logical pixels.
const (
	statusBarHeight = 50.0
	statusColumn    = 250.0
	statusFontSize  = 40.0
	markerSize      = 25.0
)

// Star geometry: five points alternating outer and inner radius.
const (
	starPoints     = 5
	starInnerRatio = 0.382
)

var (
	// shapePaints are cycled by shape index.
	shapePaints = [3]gg.RGBA{gg.Red, gg.Green, gg.Blue}

	statusBackground = gg.RGBA2(0.32, 0.42, 0.62, 0.9)
)

// Renderer issues the draw calls of a particle frame: one fill per active
// shape, the spawn marker and the status overlay.
type Renderer struct {
	stars StarCache

	faceSrc  *text.FontSource
	faceSize float64
	face     text.Face
}

// DrawShapes fills shapes with the selected graphic type, cycling through
// red, green and blue by index.
func (r *Renderer) DrawShapes(dc *gg.Context, shapes []Shape, t GraphicType) {
	for i := range shapes {
		b := shapes[i].Bounds
		c := shapePaints[i%len(shapePaints)]
		dc.SetRGBA(c.R, c.G, c.B, c.A)
		kind := t
		if t == GraphicBlend {
			kind = blendKinds[i%len(blendKinds)]
		}
		switch kind {
		case GraphicCircle:
			center := b.Center()
			dc.DrawCircle(center.X, center.Y, b.Width()*0.5)
		case GraphicRoundedRect:
			dc.DrawRoundedRectangle(b.Left, b.Top, b.Width(), b.Height(), b.Width()*0.2)
		case GraphicOval:
			center := b.Center()
			dc.DrawEllipse(center.X, center.Y, b.Width()*0.5, b.Height()*0.5)
		case GraphicStar:
			center := b.Center()
			appendPathAt(dc, r.stars.Path(i, b.Width()*0.5), center.X, center.Y)
		default:
			dc.DrawRectangle(b.Left, b.Top, b.Width(), b.Height())
		}
		_ = dc.Fill()
	}
}

var blendKinds = [4]GraphicType{GraphicRect, GraphicCircle, GraphicRoundedRect, GraphicOval}

// DrawMarker fills the spawn marker in black.
func (r *Renderer) DrawMarker(dc *gg.Context, marker Rect) {
	dc.SetRGBA(0, 0, 0, 1)
	dc.DrawRectangle(marker.Left, marker.Top, marker.Width(), marker.Height())
	_ = dc.Fill()
}

// DrawStatus paints the overlay bar across the top of a width pixel wide
// screen and the status lines in columns. Text is skipped when no
// typeface is available.
func (r *Renderer) DrawStatus(dc *gg.Context, status Status, width, density float64, src *text.FontSource) {
	dc.SetRGBA(statusBackground.R, statusBackground.G, statusBackground.B, statusBackground.A)
	dc.DrawRectangle(0, 0, width, statusBarHeight*density)
	_ = dc.Fill()

	face := r.overlayFace(src, statusFontSize*density)
	if face == nil || len(status.Lines) == 0 {
		return
	}
	dc.SetFont(face)
	c := status.Color
	dc.SetRGBA(c.R, c.G, c.B, c.A)
	top := statusFontSize * density
	left := statusColumn * density / 2
	for _, line := range status.Lines {
		dc.DrawString(line, left, top)
		left += statusColumn * density
	}
}

// overlayFace returns a face of the given size, reusing the previous one
// while the source and size are unchanged.
func (r *Renderer) overlayFace(src *text.FontSource, size float64) text.Face {
	if src == nil {
		return nil
	}
	if r.face == nil || r.faceSrc != src || r.faceSize != size {
		r.faceSrc, r.faceSize = src, size
		r.face = src.Face(size)
	}
	return r.face
}

// Reset drops cached star paths. Call it when the shape pool is
// regenerated.
func (r *Renderer) Reset(capacity int) {
	r.stars.Reset(capacity)
}

// StarCache holds one star path per shape, built on first use around the
// origin. Shapes never change size, so a cached path only needs to be
// translated to the shape's center.
type StarCache struct {
	paths []*gg.Path
}

// Reset empties the cache and sizes it for capacity shapes.
func (c *StarCache) Reset(capacity int) {
	clear(c.paths)
	if cap(c.paths) >= capacity {
		c.paths = c.paths[:capacity]
	} else {
		c.paths = make([]*gg.Path, capacity)
	}
}

// Path returns the star path of shape i with the given outer radius.
func (c *StarCache) Path(i int, radius float64) *gg.Path {
	if i >= len(c.paths) {
		return StarPath(radius)
	}
	if c.paths[i] == nil {
		c.paths[i] = StarPath(radius)
	}
	return c.paths[i]
}

// StarPath builds a closed ten-vertex star centered on the origin, with
// the first point straight up at distance radius.
func StarPath(radius float64) *gg.Path {
	p := gg.NewPath()
	inner := radius * starInnerRatio
	step := math.Pi / starPoints
	for j := range starPoints * 2 {
		r := radius
		if j%2 == 1 {
			r = inner
		}
		angle := float64(j) * step
		x := r * math.Sin(angle)
		y := -r * math.Cos(angle)
		if j == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	return p
}

// appendPathAt replays p into the context's current path translated by
// (dx, dy).
func appendPathAt(dc *gg.Context, p *gg.Path, dx, dy float64) {
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			dc.MoveTo(e.Point.X+dx, e.Point.Y+dy)
		case gg.LineTo:
			dc.LineTo(e.Point.X+dx, e.Point.Y+dy)
		case gg.QuadTo:
			dc.QuadraticTo(e.Control.X+dx, e.Control.Y+dy, e.Point.X+dx, e.Point.Y+dy)
		case gg.CubicTo:
			dc.CubicTo(e.Control1.X+dx, e.Control1.Y+dy, e.Control2.X+dx, e.Control2.Y+dy, e.Point.X+dx, e.Point.Y+dy)
		case gg.Close:
			dc.ClosePath()
		}
	}
}
