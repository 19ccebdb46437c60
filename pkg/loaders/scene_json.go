package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// Vec3Cfg is a vector written as a JSON array [x, y, z]
type Vec3Cfg [3]float64

func (v Vec3Cfg) vec3() core.Vec3 { return core.NewVec3(v[0], v[1], v[2]) }

type CameraCfg struct {
	Origin    Vec3Cfg `json:"origin"`
	Direction Vec3Cfg `json:"direction"`
	Up        Vec3Cfg `json:"up"`
	FOV       float64 `json:"fov,omitempty"`   // radians; defaults to pi/3
	Ratio     float64 `json:"ratio,omitempty"` // defaults to 1
}

type MaterialCfg struct {
	Diffuse    float64 `json:"diffuse"`
	Specular   float64 `json:"specular"`
	SpecularK  float64 `json:"specularK"`
	Reflection float64 `json:"reflection"`
}

type LightCfg struct {
	Origin Vec3Cfg `json:"origin"`
	Color  Vec3Cfg `json:"color"`
}

// CheckerCfg replaces a shape's solid color with a checkerboard
type CheckerCfg struct {
	Color1 Vec3Cfg `json:"color1"`
	Color2 Vec3Cfg `json:"color2"`
	Size   float64 `json:"size,omitempty"`
}

type SphereCfg struct {
	Center   Vec3Cfg     `json:"center"`
	Radius   float64     `json:"radius"`
	Color    Vec3Cfg     `json:"color"`
	Checker  *CheckerCfg `json:"checker,omitempty"`
	Material string      `json:"material,omitempty"` // name in Materials; empty means the default material
}

type PlaneCfg struct {
	Point    Vec3Cfg     `json:"point"`
	Normal   Vec3Cfg     `json:"normal"`
	Color    Vec3Cfg     `json:"color"`
	Checker  *CheckerCfg `json:"checker,omitempty"`
	Material string      `json:"material,omitempty"`
}

// SceneCfg is the JSON scene description
type SceneCfg struct {
	Camera    *CameraCfg             `json:"camera,omitempty"`
	Ambient   float64                `json:"ambient"`
	Materials map[string]MaterialCfg `json:"materials,omitempty"`
	Lights    []LightCfg             `json:"lights"`
	Spheres   []SphereCfg            `json:"spheres,omitempty"`
	Planes    []PlaneCfg             `json:"planes,omitempty"`
}

// LoadSceneJSON reads and builds a scene from a JSON file
func LoadSceneJSON(path string) (*scene.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	builder, err := ParseSceneJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return builder.Build()
}

// ParseSceneJSON decodes a JSON scene description into a scene builder.
// Spheres are added before planes, each in file order.
func ParseSceneJSON(r io.Reader) (*scene.Builder, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var cfg SceneCfg
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return cfg.Builder()
}

// Builder validates the configuration and converts it to a scene builder
func (cfg *SceneCfg) Builder() (*scene.Builder, error) {
	b := scene.NewBuilder().SetAmbient(cfg.Ambient)

	if cfg.Camera != nil {
		camera, err := cfg.Camera.camera()
		if err != nil {
			return nil, err
		}
		b.SetCamera(camera)
	}

	materials := make(map[string]*material.Material, len(cfg.Materials))
	for name, mc := range cfg.Materials {
		m, err := material.NewMaterial(mc.Diffuse, mc.Specular, mc.SpecularK, mc.Reflection)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = m
	}
	defaultMaterial := material.DefaultMaterial()
	lookup := func(name string) (*material.Material, error) {
		if name == "" {
			return defaultMaterial, nil
		}
		m, ok := materials[name]
		if !ok {
			return nil, fmt.Errorf("unknown material %q", name)
		}
		return m, nil
	}

	for _, lc := range cfg.Lights {
		b.AddLight(lights.NewPointLight(lc.Origin.vec3(), lc.Color.vec3()))
	}

	for i, sc := range cfg.Spheres {
		if !(sc.Radius > 0) {
			return nil, fmt.Errorf("sphere %d: radius must be positive, got %v", i, sc.Radius)
		}
		m, err := lookup(sc.Material)
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		b.AddShape(geometry.NewSphere(sc.Center.vec3(), sc.Radius, colorSource(sc.Color, sc.Checker), m))
	}

	for i, pc := range cfg.Planes {
		m, err := lookup(pc.Material)
		if err != nil {
			return nil, fmt.Errorf("plane %d: %w", i, err)
		}
		plane, err := geometry.NewPlane(pc.Point.vec3(), pc.Normal.vec3(), colorSource(pc.Color, pc.Checker), m)
		if err != nil {
			return nil, fmt.Errorf("plane %d normal: %w", i, err)
		}
		b.AddShape(plane)
	}

	return b, nil
}

func (cc *CameraCfg) camera() (*geometry.Camera, error) {
	config := geometry.CameraConfig{
		Origin:    cc.Origin.vec3(),
		Direction: cc.Direction.vec3(),
		Up:        cc.Up.vec3(),
		FOV:       cc.FOV,
		Ratio:     cc.Ratio,
	}
	if config.FOV == 0 {
		config.FOV = math.Pi / 3
	}
	if config.Ratio == 0 {
		config.Ratio = 1
	}
	camera, err := geometry.NewCamera(config)
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	return camera, nil
}

func colorSource(color Vec3Cfg, checker *CheckerCfg) material.ColorSource {
	if checker != nil {
		return material.NewChecker(checker.Color1.vec3(), checker.Color2.vec3(), checker.Size)
	}
	return material.NewSolidColor(color.vec3())
}
