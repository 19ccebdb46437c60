package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Color    material.ColorSource
	Material *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color material.ColorSource, mat *material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Color:    color,
		Material: mat,
	}
}

// Intersect returns the nearest positive root of the ray-sphere quadratic
func (s *Sphere) Intersect(ray core.Ray) float64 {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return math.Inf(1)
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root > 0 {
		return root
	}
	// Ray starts inside the sphere
	root = (-halfB + sqrtD) / a
	if root > 0 {
		return root
	}
	return math.Inf(1)
}

// Normal returns the outward normal (from center to point)
func (s *Sphere) Normal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// ColorAt returns the sphere's color at point
func (s *Sphere) ColorAt(point core.Vec3) core.Vec3 {
	return s.Color.Evaluate(point)
}

// GetMaterial returns the sphere's material
func (s *Sphere) GetMaterial() *material.Material {
	return s.Material
}
