package ggbench

import "github.com/gogpu/gg"

// ContextSurface is an offscreen Surface backed by a gg.Context, used by
// the headless front end and tests.
type ContextSurface struct {
	dc      *gg.Context
	present func(*gg.Context) error
	frames  int
}

// NewContextSurface wraps dc. present, if not nil, is called for every
// presented frame.
func NewContextSurface(dc *gg.Context, present func(*gg.Context) error) *ContextSurface {
	return &ContextSurface{dc: dc, present: present}
}

// Lock implements Surface.
func (s *ContextSurface) Lock() *gg.Context { return s.dc }

// Present implements Surface.
func (s *ContextSurface) Present() error {
	s.frames++
	if s.present == nil {
		return nil
	}
	return s.present(s.dc)
}

// Frames returns the number of presented frames.
func (s *ContextSurface) Frames() int { return s.frames }

// Resize recreates the backing context when the size changed.
func (s *ContextSurface) Resize(width, height int) error {
	if s.dc != nil && s.dc.Width() == width && s.dc.Height() == height {
		return nil
	}
	if s.dc == nil {
		s.dc = gg.NewContext(width, height)
		return nil
	}
	return s.dc.Resize(width, height)
}

// Context returns the backing context.
func (s *ContextSurface) Context() *gg.Context { return s.dc }
