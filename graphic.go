package ggbench

import (
	"fmt"
	"strings"
)

// GraphicType selects the shape drawn for each particle.
type GraphicType int

// Graphic types, numbered as the host UI sends them.
const (
	GraphicRect GraphicType = iota
	GraphicCircle
	GraphicRoundedRect
	GraphicOval
	// GraphicBlend rotates through rect, circle, rounded rect and oval by
	// shape index.
	GraphicBlend
	// GraphicStar draws a five-pointed star path per shape.
	GraphicStar

	graphicCount
)

var graphicNames = [graphicCount]string{
	GraphicRect:        "rect",
	GraphicCircle:      "circle",
	GraphicRoundedRect: "rrect",
	GraphicOval:        "oval",
	GraphicBlend:       "blend",
	GraphicStar:        "star",
}

func (t GraphicType) valid() bool {
	return t >= 0 && t < graphicCount
}

// String returns the short name used on the command line.
func (t GraphicType) String() string {
	if !t.valid() {
		return fmt.Sprintf("GraphicType(%d)", int(t))
	}
	return graphicNames[t]
}

// GraphicTypes returns all graphic types in order.
func GraphicTypes() []GraphicType {
	types := make([]GraphicType, 0, graphicCount)
	for t := GraphicRect; t < graphicCount; t++ {
		types = append(types, t)
	}
	return types
}

// ParseGraphicType resolves a name as printed by String. Matching is
// case-insensitive.
func ParseGraphicType(name string) (GraphicType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range graphicNames {
		if n == name {
			return GraphicType(t), nil
		}
	}
	return GraphicRect, fmt.Errorf("%w: unknown graphic type %q", ErrInvalidParam, name)
}
