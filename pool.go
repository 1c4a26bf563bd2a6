package ggbench

import "math/rand/v2"

// Seeds of the two pseudo-random streams. Changing either one, or drawing
// from one stream for the other's purpose, changes every generated pool.
const (
	geometrySeed = 18
	velocitySeed = 36
)

// Shape sizes and speeds in logical pixels.
const (
	minShapeSize  = 5.0
	shapeSizeSpan = 20.0
	maxShapeSpeed = 5.0
)

// Shape is one particle: a bounding box that moves by (VX, VY) every frame.
type Shape struct {
	Bounds Rect
	VX, VY float64
}

// ShapePool is a deterministic, fixed-capacity set of shapes. Only the
// first ActiveCount entries (tracked by the Controller) are animated and
// drawn; the rest are dormant.
type ShapePool struct {
	shapes   []Shape
	density  float64
	oval     bool
	revision uint64
}

// Init populates the pool with capacity shapes for the given density. Oval
// pools draw an extra aspect ratio per shape from the geometry stream.
// Init is a no-op returning false when the arguments match the current
// pool; otherwise the whole pool is regenerated and Init returns true.
func (p *ShapePool) Init(capacity int, density float64, oval bool) bool {
	capacity = max(capacity, 0)
	if p.shapes != nil && len(p.shapes) == capacity && p.density == density && p.oval == oval {
		return false
	}
	p.generate(capacity, density, oval)
	return true
}

func (p *ShapePool) generate(capacity int, density float64, oval bool) {
	if cap(p.shapes) >= capacity {
		p.shapes = p.shapes[:capacity]
	} else {
		p.shapes = make([]Shape, capacity)
	}
	p.density = density
	p.oval = oval
	p.revision++

	geometry := rand.New(rand.NewPCG(geometrySeed, geometrySeed))
	velocity := rand.New(rand.NewPCG(velocitySeed, velocitySeed))
	for i := range p.shapes {
		size := (minShapeSize + geometry.Float64()*shapeSizeSpan) * density
		height := size
		if oval {
			height = (0.5 + geometry.Float64()) * size
		}
		p.shapes[i] = Shape{
			Bounds: RectXYWH(-size, -size, size, height),
			VX:     signedUnit(velocity) * maxShapeSpeed * density,
			VY:     signedUnit(velocity) * maxShapeSpeed * density,
		}
	}
	Logger().Debug("shape pool generated", "capacity", capacity, "density", density, "oval", oval)
}

// signedUnit returns a uniform value in [-1, 1).
func signedUnit(r *rand.Rand) float64 {
	return r.Float64()*2 - 1
}

// Len returns the pool capacity.
func (p *ShapePool) Len() int { return len(p.shapes) }

// At returns a pointer to shape i.
func (p *ShapePool) At(i int) *Shape { return &p.shapes[i] }

// Shapes returns the first n shapes.
func (p *ShapePool) Shapes(n int) []Shape {
	return p.shapes[:min(n, len(p.shapes))]
}

// Revision increases every time the pool is regenerated.
func (p *ShapePool) Revision() uint64 { return p.revision }
