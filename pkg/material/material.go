package material

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Material holds the Phong shading coefficients of a surface.
// A material is immutable once created and shared by every point of the shapes using it.
type Material struct {
	Diffuse    float64 // Lambert coefficient
	Specular   float64 // Blinn-Phong coefficient
	SpecularK  float64 // Blinn-Phong shininess exponent
	Reflection float64 // Mirror reflectance in [0, 1]
}

// NewMaterial creates a new material, validating the reflection coefficient
func NewMaterial(diffuse, specular, specularK, reflection float64) (*Material, error) {
	if reflection < 0 || reflection > 1 {
		return nil, fmt.Errorf("%w: reflection %v outside [0, 1]", core.ErrInvalidMaterial, reflection)
	}
	if diffuse < 0 || specular < 0 || specularK < 0 {
		return nil, fmt.Errorf("%w: coefficients must be non-negative", core.ErrInvalidMaterial)
	}
	return &Material{
		Diffuse:    diffuse,
		Specular:   specular,
		SpecularK:  specularK,
		Reflection: reflection,
	}, nil
}

// MustMaterial is NewMaterial for literal, known-good values
func MustMaterial(diffuse, specular, specularK, reflection float64) *Material {
	m, err := NewMaterial(diffuse, specular, specularK, reflection)
	if err != nil {
		panic(err)
	}
	return m
}

// DefaultMaterial returns a mildly glossy, mildly reflective material
func DefaultMaterial() *Material {
	return &Material{Diffuse: 1.0, Specular: 1.0, SpecularK: 50, Reflection: 0.5}
}
