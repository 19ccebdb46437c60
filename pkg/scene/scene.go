package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering.
// A Scene is produced by Builder.Build and never changes afterwards,
// so any number of goroutines may trace against it at once.
type Scene struct {
	shapes  []geometry.Shape
	lights  []lights.PointLight
	camera  *geometry.Camera
	ambient float64
}

// Hit is the nearest intersection of a ray with the scene
type Hit struct {
	Shape geometry.Shape
	Point core.Vec3
	T     float64
}

// Shading is the locally shaded result of tracing one ray
type Shading struct {
	Color  core.Vec3
	Point  core.Vec3
	Normal core.Vec3
	Shape  geometry.Shape
}

// Builder accumulates shapes, lights, camera and ambient term before a scene is frozen
type Builder struct {
	shapes  []geometry.Shape
	lights  []lights.PointLight
	camera  *geometry.Camera
	ambient float64
}

// NewBuilder creates an empty builder with the default camera and zero ambient
func NewBuilder() *Builder {
	return &Builder{}
}

// AddShape appends a shape. Insertion order decides equal-distance ties.
func (b *Builder) AddShape(shape geometry.Shape) *Builder {
	b.shapes = append(b.shapes, shape)
	return b
}

// AddLight appends a point light
func (b *Builder) AddLight(light lights.PointLight) *Builder {
	b.lights = append(b.lights, light)
	return b
}

// SetCamera sets or replaces the camera
func (b *Builder) SetCamera(camera *geometry.Camera) *Builder {
	b.camera = camera
	return b
}

// SetAmbient sets the scalar ambient term added to every channel of every hit
func (b *Builder) SetAmbient(ambient float64) *Builder {
	b.ambient = ambient
	return b
}

// Build freezes the builder's contents into a Scene
func (b *Builder) Build() (*Scene, error) {
	for i, shape := range b.shapes {
		if shape == nil {
			return nil, fmt.Errorf("shape %d is nil", i)
		}
		if shape.GetMaterial() == nil {
			return nil, fmt.Errorf("shape %d: %w: missing material", i, core.ErrInvalidMaterial)
		}
	}
	if math.IsNaN(b.ambient) || math.IsInf(b.ambient, 0) {
		return nil, fmt.Errorf("ambient must be finite, got %v", b.ambient)
	}

	camera := b.camera
	if camera == nil {
		camera = geometry.DefaultCamera()
	}

	return &Scene{
		shapes:  append([]geometry.Shape(nil), b.shapes...),
		lights:  append([]lights.PointLight(nil), b.lights...),
		camera:  camera,
		ambient: b.ambient,
	}, nil
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *geometry.Camera { return s.camera }

// GetShapes returns a copy of the scene's shapes in insertion order
func (s *Scene) GetShapes() []geometry.Shape {
	return append([]geometry.Shape(nil), s.shapes...)
}

// GetLights returns a copy of the scene's lights
func (s *Scene) GetLights() []lights.PointLight {
	return append([]lights.PointLight(nil), s.lights...)
}

// GetAmbient returns the scalar ambient term
func (s *Scene) GetAmbient() float64 { return s.ambient }

// Intersect finds the nearest shape hit by ray with a linear scan.
// Comparison is strict, so on equal distances the earliest shape wins.
func (s *Scene) Intersect(ray core.Ray) (Hit, bool) {
	tMin := math.Inf(1)
	var nearest geometry.Shape

	for _, shape := range s.shapes {
		if t := shape.Intersect(ray); t < tMin {
			tMin, nearest = t, shape
		}
	}

	if nearest == nil {
		return Hit{}, false
	}
	return Hit{Shape: nearest, Point: ray.At(tMin), T: tMin}, true
}

// TraceRay shades the nearest hit of ray with ambient, Lambert diffuse and
// Blinn-Phong specular terms. A light contributes nothing when the shadow
// ray toward it hits any shape at all, including shapes beyond the light.
func (s *Scene) TraceRay(ray core.Ray) (Shading, bool) {
	hit, ok := s.Intersect(ray)
	if !ok {
		return Shading{}, false
	}

	shape := hit.Shape
	point := hit.Point
	normal := shape.Normal(point)
	cameraDir := s.camera.Origin().Subtract(point).Normalize()
	mat := shape.GetMaterial()

	color := core.Splat(s.ambient)
	shadowOrigin := point.Add(normal.Multiply(core.Epsilon))

	for _, light := range s.lights {
		lightDir := light.DirectionFrom(point)
		if _, blocked := s.Intersect(core.Ray{Origin: shadowOrigin, Direction: lightDir}); blocked {
			continue
		}

		// Lambert shading (diffuse)
		diffuse := mat.Diffuse * max(normal.Dot(lightDir), 0)
		color = color.Add(shape.ColorAt(point).Multiply(diffuse))

		// Blinn-Phong shading (specular); no half vector when light and view are opposite
		if halfway := lightDir.Add(cameraDir); !halfway.IsZero() {
			specular := mat.Specular * math.Pow(max(normal.Dot(halfway.Normalize()), 0), mat.SpecularK)
			color = color.Add(light.Color.Multiply(specular))
		}
	}

	return Shading{Color: color, Point: point, Normal: normal, Shape: shape}, true
}
