package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3 // A point on the plane
	N        core.Vec3 // Unit normal
	Color    material.ColorSource
	Material *material.Material
}

// NewPlane creates a new plane. The normal must be non-zero.
func NewPlane(point, normal core.Vec3, color material.ColorSource, mat *material.Material) (*Plane, error) {
	n, err := normal.NormalizeChecked()
	if err != nil {
		return nil, err
	}
	return &Plane{
		Point:    point,
		N:        n,
		Color:    color,
		Material: mat,
	}, nil
}

// Intersect returns the distance to the plane along the ray, or +Inf
func (p *Plane) Intersect(ray core.Ray) float64 {
	denominator := ray.Direction.Dot(p.N)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-6 {
		return math.Inf(1)
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.N) / denominator
	if t < 0 {
		return math.Inf(1)
	}
	return t
}

// Normal returns the plane normal, which is the same everywhere
func (p *Plane) Normal(point core.Vec3) core.Vec3 {
	return p.N
}

// ColorAt returns the plane's color at point
func (p *Plane) ColorAt(point core.Vec3) core.Vec3 {
	return p.Color.Evaluate(point)
}

// GetMaterial returns the plane's material
func (p *Plane) GetMaterial() *material.Material {
	return p.Material
}
