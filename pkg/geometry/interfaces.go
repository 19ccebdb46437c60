package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// Shape is the capability every renderable object provides
type Shape interface {
	// Intersect returns the distance along ray to the nearest hit, or +Inf on a miss
	Intersect(ray core.Ray) float64
	// Normal returns the unit surface normal at a point on the shape
	Normal(point core.Vec3) core.Vec3
	// ColorAt returns the base color at a point on the shape
	ColorAt(point core.Vec3) core.Vec3
	// GetMaterial returns the shared shading coefficients
	GetMaterial() *material.Material
}
