package loaders

import (
	"errors"
	"strings"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
)

func TestLoadSceneJSON_ExampleFile(t *testing.T) {
	s, err := LoadSceneJSON("../../scenes/spheres.json")
	if err != nil {
		t.Fatalf("LoadSceneJSON failed: %v", err)
	}

	shapes := s.GetShapes()
	if len(shapes) != 4 {
		t.Fatalf("Expected 4 shapes, got %d", len(shapes))
	}
	if _, ok := shapes[0].(*geometry.Sphere); !ok {
		t.Errorf("Expected spheres first, got %T", shapes[0])
	}
	if _, ok := shapes[3].(*geometry.Plane); !ok {
		t.Errorf("Expected plane last, got %T", shapes[3])
	}
	if got := shapes[3].GetMaterial().Reflection; got != 0.25 {
		t.Errorf("Expected floor reflection 0.25, got %v", got)
	}
	if len(s.GetLights()) != 1 {
		t.Errorf("Expected 1 light, got %d", len(s.GetLights()))
	}
	if s.GetAmbient() != 0.05 {
		t.Errorf("Expected ambient 0.05, got %v", s.GetAmbient())
	}
	if s.GetCamera().Origin() != core.NewVec3(0, 0.35, 1) {
		t.Errorf("Unexpected camera origin %v", s.GetCamera().Origin())
	}
}

func TestParseSceneJSON_Defaults(t *testing.T) {
	b, err := ParseSceneJSON(strings.NewReader(`{
		"ambient": 0.2,
		"lights": [],
		"spheres": [{"center": [0, 0, -3], "radius": 1, "color": [1, 0, 0]}]
	}`))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	s, err := b.Build()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if s.GetCamera().Origin() != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected default camera at origin, got %v", s.GetCamera().Origin())
	}
	sphere := s.GetShapes()[0]
	if sphere.GetMaterial().Reflection != 0.5 {
		t.Errorf("Expected default material, got %+v", sphere.GetMaterial())
	}
	if c := sphere.ColorAt(core.NewVec3(0, 0, -2)); c != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected red sphere, got %v", c)
	}
}

func TestParseSceneJSON_Errors(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr error
		errText string
	}{
		{
			name:    "camera looking along up",
			json:    `{"camera": {"origin": [0,0,0], "direction": [0,1,0], "up": [0,1,0]}}`,
			wantErr: core.ErrDegenerateCamera,
		},
		{
			name:    "zero camera direction",
			json:    `{"camera": {"origin": [0,0,0], "direction": [0,0,0], "up": [0,1,0]}}`,
			wantErr: core.ErrZeroVector,
		},
		{
			name:    "zero plane normal",
			json:    `{"planes": [{"point": [0,0,0], "normal": [0,0,0], "color": [1,1,1]}]}`,
			wantErr: core.ErrZeroVector,
		},
		{
			name:    "reflection out of range",
			json:    `{"materials": {"bad": {"diffuse": 1, "specular": 1, "specularK": 10, "reflection": 2}}}`,
			wantErr: core.ErrInvalidMaterial,
		},
		{
			name:    "unknown material",
			json:    `{"spheres": [{"center": [0,0,-3], "radius": 1, "color": [1,1,1], "material": "gold"}]}`,
			errText: `unknown material "gold"`,
		},
		{
			name:    "non-positive radius",
			json:    `{"spheres": [{"center": [0,0,-3], "radius": 0, "color": [1,1,1]}]}`,
			errText: "radius must be positive",
		},
		{
			name:    "unknown field",
			json:    `{"antialias": 4}`,
			errText: "unknown field",
		},
		{
			name:    "malformed vector",
			json:    `{"lights": [{"origin": [1,2], "color": "white"}]}`,
			errText: "decode scene",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSceneJSON(strings.NewReader(tt.json))
			if err == nil {
				t.Fatal("Expected error, got none")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
			if tt.errText != "" && !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("Expected error containing %q, got %v", tt.errText, err)
			}
		})
	}
}
