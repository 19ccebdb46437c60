package lights

import "github.com/df07/go-recursive-raytracer/pkg/core"

// PointLight is an infinitely small light with no distance falloff
type PointLight struct {
	Origin core.Vec3
	Color  core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(origin, color core.Vec3) PointLight {
	return PointLight{Origin: origin, Color: color}
}

// DirectionFrom returns the unit vector from point toward the light
func (l PointLight) DirectionFrom(point core.Vec3) core.Vec3 {
	return l.Origin.Subtract(point).Normalize()
}
