package renderer

import (
	"errors"
	"image/color"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestFramebuffer_DownsampleAveragesBlocks(t *testing.T) {
	fb := NewFramebuffer(4, 2)
	// Left 2x2 block: four distinct colors
	fb.Set(0, 0, core.NewVec3(1, 0, 0))
	fb.Set(0, 1, core.NewVec3(0, 1, 0))
	fb.Set(1, 0, core.NewVec3(0, 0, 1))
	fb.Set(1, 1, core.NewVec3(1, 1, 1))
	// Right 2x2 block: uniform gray
	for row := 0; row < 2; row++ {
		for col := 2; col < 4; col++ {
			fb.Set(row, col, core.NewVec3(0.5, 0.5, 0.5))
		}
	}

	out, err := fb.Downsample(2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out.Width != 2 || out.Height != 1 {
		t.Fatalf("Expected 2x1 output, got %dx%d", out.Width, out.Height)
	}
	if got := out.At(0, 0); got != core.NewVec3(0.5, 0.5, 0.5) {
		t.Errorf("Expected mean (0.5,0.5,0.5), got %v", got)
	}
	if got := out.At(0, 1); got != core.NewVec3(0.5, 0.5, 0.5) {
		t.Errorf("Expected uniform block to stay (0.5,0.5,0.5), got %v", got)
	}
}

func TestFramebuffer_DownsampleFactorOne(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Set(1, 2, core.NewVec3(0.25, 0.5, 0.75))

	out, err := fb.Downsample(1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out.At(1, 2) != core.NewVec3(0.25, 0.5, 0.75) {
		t.Errorf("Expected identity downsample, got %v", out.At(1, 2))
	}
}

func TestFramebuffer_DownsampleInvalid(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	for _, factor := range []int{0, -2} {
		if _, err := fb.Downsample(factor); !errors.Is(err, core.ErrInvalidAntialias) {
			t.Errorf("Factor %d: expected ErrInvalidAntialias, got %v", factor, err)
		}
	}
	if _, err := fb.Downsample(3); err == nil {
		t.Error("Expected error for non-divisible factor")
	}
}

func TestFramebuffer_RowsAndRGBA(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Set(0, 1, core.NewVec3(1, 0.5, 2))

	rows := fb.Rows()
	if rows[0][1] != core.NewVec3(1, 0.5, 2) {
		t.Errorf("Expected row 0 col 1 to hold the set color, got %v", rows[0][1])
	}
	rows[0][1] = core.Vec3{}
	if fb.At(0, 1).IsZero() {
		t.Error("Expected Rows to copy pixel data")
	}

	img := fb.ToRGBA()
	expected := color.RGBA{R: 255, G: 127, B: 255, A: 255}
	if got := img.RGBAAt(1, 0); got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{A: 255}) {
		t.Errorf("Expected opaque black, got %v", got)
	}
}
