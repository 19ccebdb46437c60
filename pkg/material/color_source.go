package material

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// ColorSource provides the point-dependent base color of a surface
type ColorSource interface {
	Evaluate(point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of position
func (s *SolidColor) Evaluate(point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates two colors on a grid of cells in the XZ plane
type Checker struct {
	Color1   core.Vec3
	Color2   core.Vec3
	CellSize float64
}

// NewChecker creates a checkerboard color source; cellSize <= 0 means 1
func NewChecker(color1, color2 core.Vec3, cellSize float64) *Checker {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Checker{Color1: color1, Color2: color2, CellSize: cellSize}
}

// Evaluate picks Color1 or Color2 by the parity of the cell containing point
func (c *Checker) Evaluate(point core.Vec3) core.Vec3 {
	cx := int(math.Floor(point.X / c.CellSize))
	cz := int(math.Floor(point.Z / c.CellSize))
	if (cx+cz)%2 == 0 {
		return c.Color1
	}
	return c.Color2
}
