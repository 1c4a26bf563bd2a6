package ggbench

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Default screen used until the front end reports its real size.
const (
	DefaultWidth   = 1280
	DefaultHeight  = 720
	DefaultDensity = 1.0
)

// Well-known resource names.
const (
	// DefaultTypeface is the typeface used by the status overlay.
	DefaultTypeface = "default"
	// BridgeImage is the sample image registered by the front ends.
	BridgeImage = "bridge"
)

// Host holds the per-view state shared between a front end and the
// benches: screen geometry, pointer, named resources, frame statistics
// and the tunable configuration.
//
// A Host is owned by one View and is not safe for concurrent use.
type Host struct {
	width   int
	height  int
	density float64

	mouseX float64
	mouseY float64

	clock  Clock
	stats  *StatsWindow
	params *Params

	images    map[string]*gg.ImageBuf
	typefaces map[string]*text.FontSource
}

// HostOption configures a Host during creation.
type HostOption func(*Host)

// WithClock sets the time source used to timestamp frames.
func WithClock(c Clock) HostOption {
	return func(h *Host) { h.clock = c }
}

// WithParams shares an existing configuration with the host.
func WithParams(p *Params) HostOption {
	return func(h *Host) { h.params = p }
}

// NewHost creates a Host for a width x height pixel screen. Invalid
// geometry falls back to the defaults.
func NewHost(width, height int, density float64, opts ...HostOption) *Host {
	h := &Host{
		width:     DefaultWidth,
		height:    DefaultHeight,
		density:   DefaultDensity,
		mouseX:    -1,
		mouseY:    -1,
		stats:     NewStatsWindow(),
		images:    make(map[string]*gg.ImageBuf),
		typefaces: make(map[string]*text.FontSource),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.clock == nil {
		h.clock = SystemClock()
	}
	if h.params == nil {
		h.params = DefaultParams()
	}
	h.UpdateScreen(width, height, density)
	return h
}

// Width returns the screen width in pixels.
func (h *Host) Width() int { return h.width }

// Height returns the screen height in pixels.
func (h *Host) Height() int { return h.height }

// Density returns the ratio of physical to logical pixels.
func (h *Host) Density() float64 { return h.density }

// Params returns the shared configuration.
func (h *Host) Params() *Params { return h.params }

// Clock returns the host's time source.
func (h *Host) Clock() Clock { return h.clock }

// UpdateScreen commits a new screen size and density. It returns true
// only if the values are valid and differ from the current ones, in
// which case size-dependent renderer state must be invalidated.
func (h *Host) UpdateScreen(width, height int, density float64) bool {
	if width <= 0 || height <= 0 {
		Logger().Error("Host.UpdateScreen: width or height is invalid",
			"width", width, "height", height, "err", ErrInvalidScreen)
		return false
	}
	if !(density >= 1.0) {
		Logger().Error("Host.UpdateScreen: density is invalid",
			"density", density, "err", ErrInvalidScreen)
		return false
	}
	if width == h.width && height == h.height && density == h.density {
		return false
	}
	h.width, h.height, h.density = width, height, density
	return true
}

// MouseMoved records the pointer position in pixels.
func (h *Host) MouseMoved(x, y float64) {
	h.mouseX, h.mouseY = x, y
}

// MouseLeft records that the pointer left the surface.
func (h *Host) MouseLeft() {
	h.mouseX, h.mouseY = -1, -1
}

// Pointer returns the pointer position, or (-1, -1) if there is none.
func (h *Host) Pointer() gg.Point {
	return gg.Pt(h.mouseX, h.mouseY)
}

// HasPointer reports whether a pointer is present.
func (h *Host) HasPointer() bool {
	return h.mouseX != -1 || h.mouseY != -1
}

// AddImage registers an image under name. Existing entries are never
// replaced.
func (h *Host) AddImage(name string, img *gg.ImageBuf) error {
	if err := checkResource("Host.AddImage", name, img == nil, h.images[name] != nil); err != nil {
		return err
	}
	h.images[name] = img
	return nil
}

// Image returns the image registered under name, or nil.
func (h *Host) Image(name string) *gg.ImageBuf {
	return h.images[name]
}

// AddTypeface registers a font source under name. Existing entries are
// never replaced.
func (h *Host) AddTypeface(name string, src *text.FontSource) error {
	if err := checkResource("Host.AddTypeface", name, src == nil, h.typefaces[name] != nil); err != nil {
		return err
	}
	h.typefaces[name] = src
	return nil
}

// Typeface returns the font source registered under name, or nil.
func (h *Host) Typeface(name string) *text.FontSource {
	return h.typefaces[name]
}

func checkResource(op, name string, isNil, exists bool) error {
	var err error
	switch {
	case name == "":
		err = ErrEmptyName
	case isNil:
		err = ErrNilResource
	case exists:
		err = fmt.Errorf("%w: %q", ErrDuplicateName, name)
	default:
		return nil
	}
	Logger().Error(op+": resource rejected", "name", name, "err", err)
	return err
}

// RecordFrame marks the end of a frame that took drawTime microseconds.
func (h *Host) RecordFrame(drawTime int64) {
	h.stats.RecordFrame(h.clock.Now(), drawTime)
}

// ResetFrames clears the frame statistics; the next frame is a first frame.
func (h *Host) ResetFrames() {
	h.stats.Reset()
}

// CurrentFPS returns the measured frame rate, or 0 while not enough
// frames have been recorded.
func (h *Host) CurrentFPS() float64 { return h.stats.CurrentFPS() }

// LastDrawTime returns the previous frame's draw time in microseconds.
func (h *Host) LastDrawTime() int64 { return h.stats.LastDrawTime() }

// AverageDrawTime returns the mean draw time in microseconds.
func (h *Host) AverageDrawTime() int64 { return h.stats.AverageDrawTime() }

// IsFirstFrame reports whether no frame was recorded since the last reset.
func (h *Host) IsFirstFrame() bool { return h.stats.IsFirstFrame() }
