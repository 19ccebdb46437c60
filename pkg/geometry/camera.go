package geometry

import (
	"fmt"
	"image"
	"iter"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// CameraConfig contains the parameters used to build a camera
type CameraConfig struct {
	Origin    core.Vec3
	Direction core.Vec3 // Viewing direction, need not be normalized
	Up        core.Vec3 // Up direction, need not be normalized
	FOV       float64   // Horizontal field of view in radians
	Ratio     float64   // Horizontal over vertical field of view
}

// DefaultCameraConfig returns a camera at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Origin:    core.NewVec3(0, 0, 0),
		Direction: core.NewVec3(0, 0, -1),
		Up:        core.NewVec3(0, 1, 0),
		FOV:       math.Pi / 3,
		Ratio:     1,
	}
}

// Camera turns pixel coordinates into primary rays
type Camera struct {
	origin    core.Vec3
	direction core.Vec3
	up        core.Vec3
	xDir      core.Vec3 // direction × up
	fovX      float64
	fovY      float64
}

// PixelRay is a primary ray tagged with the pixel it was generated for.
// J counts upward from the bottom of the image.
type PixelRay struct {
	I, J int
	Ray  core.Ray
}

// NewCamera validates config and creates a camera
func NewCamera(config CameraConfig) (*Camera, error) {
	direction, err := config.Direction.NormalizeChecked()
	if err != nil {
		return nil, fmt.Errorf("camera direction: %w", err)
	}
	up, err := config.Up.NormalizeChecked()
	if err != nil {
		return nil, fmt.Errorf("camera up: %w", err)
	}
	xDir := direction.Cross(up)
	if xDir.Length() < 1e-12 {
		return nil, core.ErrDegenerateCamera
	}
	if !(config.FOV > 0 && config.FOV < math.Pi) || !(config.Ratio > 0) {
		return nil, fmt.Errorf("%w: fov=%v ratio=%v", core.ErrInvalidCamera, config.FOV, config.Ratio)
	}

	return &Camera{
		origin:    config.Origin,
		direction: direction,
		up:        up,
		xDir:      xDir,
		fovX:      config.FOV,
		fovY:      config.FOV / config.Ratio,
	}, nil
}

// DefaultCamera returns the camera built from DefaultCameraConfig
func DefaultCamera() *Camera {
	camera, err := NewCamera(DefaultCameraConfig())
	if err != nil {
		panic(err)
	}
	return camera
}

// Origin returns the camera position
func (c *Camera) Origin() core.Vec3 {
	return c.origin
}

// RayAt returns the primary ray for pixel (i, j) of a resX × resY grid.
// Each axis offset is tan(pixelOffset * fov / resolution), a small-angle
// pinhole approximation rather than a projection onto an image plane.
func (c *Camera) RayAt(i, j, resX, resY int) core.Ray {
	x := float64(i) - float64(resX)/2
	y := float64(j) - float64(resY)/2

	dx := math.Tan(x * c.fovX / float64(resX))
	dy := math.Tan(y * c.fovY / float64(resY))

	d := c.direction.Add(c.up.Multiply(dy)).Add(c.xDir.Multiply(dx))
	return core.NewRay(c.origin, d)
}

// Rays yields a ray for every pixel of a resX × resY grid, i outer and j inner
func (c *Camera) Rays(resX, resY int) iter.Seq[PixelRay] {
	return c.RaysInBounds(image.Rect(0, 0, resX, resY), resX, resY)
}

// RaysInBounds is Rays restricted to i in [Min.X, Max.X) and j in [Min.Y, Max.Y)
func (c *Camera) RaysInBounds(bounds image.Rectangle, resX, resY int) iter.Seq[PixelRay] {
	return func(yield func(PixelRay) bool) {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
				if !yield(PixelRay{I: i, J: j, Ray: c.RayAt(i, j, resX, resY)}) {
					return
				}
			}
		}
	}
}
