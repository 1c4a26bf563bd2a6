package ggbench

import (
	"fmt"
	"math"
)

// Default tunables.
const (
	DefaultTargetFPS  = 60.0
	DefaultStartCount = 1
	DefaultStepCount  = 600
	DefaultMaxCount   = 1_000_000

	// MaxShapeCount bounds every count tunable. Each bench allocates its
	// whole pool up front.
	MaxShapeCount = 10_000_000
)

// ParamKind identifies a numeric tunable that a host UI may change.
type ParamKind int

// Tunable kinds, numbered as the host UI sends them.
const (
	ParamStartCount ParamKind = iota
	ParamStepCount
	ParamMaxCount
	ParamTargetFPS
)

// String returns the tunable's name.
func (k ParamKind) String() string {
	switch k {
	case ParamStartCount:
		return "start-count"
	case ParamStepCount:
		return "step-count"
	case ParamMaxCount:
		return "max-count"
	case ParamTargetFPS:
		return "target-fps"
	default:
		return fmt.Sprintf("ParamKind(%d)", int(k))
	}
}

// Params is the benchmark configuration shared by the host, the benches
// and the reporting layer. A single instance is owned by the Host and
// handed out by pointer; every change bumps Revision so benches pick it
// up on their next frame.
type Params struct {
	TargetFPS  float64
	StartCount int
	StepCount  int
	MaxCount   int
	Graphic    GraphicType
	ShowStatus bool

	revision uint64
}

// ParamOption configures Params during creation.
//
// Example:
//
//	p, err := ggbench.NewParams(
//	    ggbench.WithTargetFPS(120),
//	    ggbench.WithMaxCount(50_000),
//	)
type ParamOption func(*Params)

// DefaultParams returns the default configuration.
func DefaultParams() *Params {
	return &Params{
		TargetFPS:  DefaultTargetFPS,
		StartCount: DefaultStartCount,
		StepCount:  DefaultStepCount,
		MaxCount:   DefaultMaxCount,
		Graphic:    GraphicRect,
		ShowStatus: true,
	}
}

// NewParams returns the defaults with opts applied, or an error if the
// result is invalid.
func NewParams(opts ...ParamOption) (*Params, error) {
	p := DefaultParams()
	for _, opt := range opts {
		opt(p)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// WithTargetFPS sets the frame rate the controller tries to sustain.
func WithTargetFPS(fps float64) ParamOption {
	return func(p *Params) { p.TargetFPS = fps }
}

// WithStartCount sets the number of active shapes at the start of a run.
func WithStartCount(n int) ParamOption {
	return func(p *Params) { p.StartCount = n }
}

// WithStepCount sets the undamped per-frame growth step.
func WithStepCount(n int) ParamOption {
	return func(p *Params) { p.StepCount = n }
}

// WithMaxCount sets the shape pool capacity.
func WithMaxCount(n int) ParamOption {
	return func(p *Params) { p.MaxCount = n }
}

// WithGraphic sets the shape kind drawn by the particle bench.
func WithGraphic(t GraphicType) ParamOption {
	return func(p *Params) { p.Graphic = t }
}

// WithStatus shows or hides the status overlay.
func WithStatus(show bool) ParamOption {
	return func(p *Params) { p.ShowStatus = show }
}

// Validate checks every tunable.
func (p *Params) Validate() error {
	if err := checkParam(ParamTargetFPS, p.TargetFPS); err != nil {
		return err
	}
	for _, c := range []struct {
		kind  ParamKind
		value int
	}{
		{ParamStartCount, p.StartCount},
		{ParamStepCount, p.StepCount},
		{ParamMaxCount, p.MaxCount},
	} {
		if err := checkParam(c.kind, float64(c.value)); err != nil {
			return err
		}
	}
	if !p.Graphic.valid() {
		return fmt.Errorf("%w: graphic type %d", ErrInvalidParam, int(p.Graphic))
	}
	return nil
}

func checkParam(kind ParamKind, value float64) error {
	switch kind {
	case ParamTargetFPS:
		if !(value > 0) || math.IsInf(value, 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidParam, kind, value)
		}
	case ParamStartCount, ParamStepCount, ParamMaxCount:
		if !(value >= 1) || value > MaxShapeCount {
			return fmt.Errorf("%w: %s must be in [1, %d], got %v", ErrInvalidParam, kind, MaxShapeCount, value)
		}
		if value != math.Trunc(value) {
			return fmt.Errorf("%w: %s must be a whole number, got %v", ErrInvalidParam, kind, value)
		}
	default:
		return fmt.Errorf("%w: unknown parameter %s", ErrInvalidParam, kind)
	}
	return nil
}

// Set changes one numeric tunable. Invalid values are logged and
// rejected, leaving the configuration untouched.
func (p *Params) Set(kind ParamKind, value float64) error {
	if err := checkParam(kind, value); err != nil {
		Logger().Error("rejected parameter", "param", kind.String(), "value", value, "err", err)
		return err
	}
	switch kind {
	case ParamTargetFPS:
		p.TargetFPS = value
	case ParamStartCount:
		p.StartCount = int(value)
	case ParamStepCount:
		p.StepCount = int(value)
	case ParamMaxCount:
		p.MaxCount = int(value)
	}
	p.revision++
	Logger().Debug("parameter updated", "param", kind.String(), "value", value)
	return nil
}

// SetGraphic switches the shape kind. Unknown kinds fall back to
// GraphicRect.
func (p *Params) SetGraphic(t GraphicType) {
	if !t.valid() {
		t = GraphicRect
	}
	if p.Graphic == t {
		return
	}
	p.Graphic = t
	p.revision++
}

// SetShowStatus toggles the status overlay. It does not affect the
// controller and does not bump the revision.
func (p *Params) SetShowStatus(show bool) {
	p.ShowStatus = show
}

// Revision increases on every change that must restart a run.
func (p *Params) Revision() uint64 {
	return p.revision
}

// startCount returns StartCount clamped to [1, MaxCount].
func (p *Params) startCount() int {
	return max(1, min(p.StartCount, p.MaxCount))
}
