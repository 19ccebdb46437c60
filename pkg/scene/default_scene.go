package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NewDefaultScene creates three reflective spheres over a checkerboard floor
func NewDefaultScene() (*Scene, error) {
	camera, err := geometry.NewCamera(geometry.CameraConfig{
		Origin:    core.NewVec3(0, 0.35, 1),
		Direction: core.NewVec3(0, -0.35, -2),
		Up:        core.NewVec3(0, 1, 0),
		FOV:       1.0,
		Ratio:     1.0,
	})
	if err != nil {
		return nil, err
	}

	shiny := material.MustMaterial(1.0, 1.0, 50, 0.5)
	floorMaterial := material.MustMaterial(0.75, 0.5, 50, 0.25)

	floor, err := geometry.NewPlane(
		core.NewVec3(0, -0.5, 0),
		core.NewVec3(0, 1, 0),
		material.NewChecker(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0), 1),
		floorMaterial,
	)
	if err != nil {
		return nil, err
	}

	return NewBuilder().
		SetCamera(camera).
		SetAmbient(0.05).
		AddShape(geometry.NewSphere(core.NewVec3(0.75, 0.1, -1), 0.6, material.NewSolidColor(core.NewVec3(0, 0, 1)), shiny)).
		AddShape(geometry.NewSphere(core.NewVec3(-0.75, 0.1, -2.25), 0.6, material.NewSolidColor(core.NewVec3(0.5, 0.223, 0.5)), shiny)).
		AddShape(geometry.NewSphere(core.NewVec3(-2.75, 0.1, -3.5), 0.6, material.NewSolidColor(core.NewVec3(1, 0.572, 0.184)), shiny)).
		AddShape(floor).
		AddLight(lights.NewPointLight(core.NewVec3(5, 5, -10), core.NewVec3(1, 1, 1))).
		Build()
}

// NewEmptyScene creates a scene with the default camera and nothing to hit
func NewEmptyScene() (*Scene, error) {
	return NewBuilder().SetAmbient(0.1).Build()
}

// NewMirrorsScene places a matte sphere between two facing mirror spheres,
// which makes the reflection depth directly visible
func NewMirrorsScene() (*Scene, error) {
	camera, err := geometry.NewCamera(geometry.CameraConfig{
		Origin:    core.NewVec3(0, 1.5, 4),
		Direction: core.NewVec3(0, -0.3, -1),
		Up:        core.NewVec3(0, 1, 0),
		FOV:       1.2,
		Ratio:     1.0,
	})
	if err != nil {
		return nil, err
	}

	mirror := material.MustMaterial(0.1, 1.0, 200, 0.9)
	matte := material.MustMaterial(1.0, 0.2, 10, 0.0)
	floorMaterial := material.MustMaterial(0.8, 0.1, 10, 0.1)

	floor, err := geometry.NewPlane(
		core.NewVec3(0, -1, 0),
		core.NewVec3(0, 1, 0),
		material.NewChecker(core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.2, 0.2, 0.3), 0.5),
		floorMaterial,
	)
	if err != nil {
		return nil, err
	}

	silver := material.NewSolidColor(core.NewVec3(0.8, 0.8, 0.8))
	return NewBuilder().
		SetCamera(camera).
		SetAmbient(0.02).
		AddShape(geometry.NewSphere(core.NewVec3(-1.6, 0, -1), 1, silver, mirror)).
		AddShape(geometry.NewSphere(core.NewVec3(1.6, 0, -1), 1, silver, mirror)).
		AddShape(geometry.NewSphere(core.NewVec3(0, -0.5, -0.5), 0.5, material.NewSolidColor(core.NewVec3(0.9, 0.2, 0.1)), matte)).
		AddShape(floor).
		AddLight(lights.NewPointLight(core.NewVec3(0, 6, 2), core.NewVec3(1, 1, 1))).
		AddLight(lights.NewPointLight(core.NewVec3(-4, 3, 4), core.NewVec3(0.3, 0.3, 0.4))).
		Build()
}
