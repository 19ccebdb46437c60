package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Framebuffer is a row-major grid of linear RGB colors. Row 0 is the top of the image.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []core.Vec3
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]core.Vec3, width*height),
	}
}

// At returns the color at (row, col)
func (f *Framebuffer) At(row, col int) core.Vec3 {
	return f.Pix[row*f.Width+col]
}

// Set stores the color at (row, col)
func (f *Framebuffer) Set(row, col int, c core.Vec3) {
	f.Pix[row*f.Width+col] = c
}

// Downsample box-filters the framebuffer: every factor × factor block
// becomes one pixel holding the block's mean color
func (f *Framebuffer) Downsample(factor int) (*Framebuffer, error) {
	if factor <= 0 {
		return nil, fmt.Errorf("%w: got %d", core.ErrInvalidAntialias, factor)
	}
	if f.Width%factor != 0 || f.Height%factor != 0 {
		return nil, fmt.Errorf("framebuffer %dx%d is not divisible by %d", f.Width, f.Height, factor)
	}

	out := NewFramebuffer(f.Width/factor, f.Height/factor)
	scale := 1.0 / float64(factor*factor)

	for row := 0; row < out.Height; row++ {
		for col := 0; col < out.Width; col++ {
			sum := core.Vec3{}
			for k := 0; k < factor; k++ {
				for l := 0; l < factor; l++ {
					sum = sum.Add(f.At(row*factor+k, col*factor+l))
				}
			}
			out.Set(row, col, sum.Multiply(scale))
		}
	}

	return out, nil
}

// Rows returns the pixels as a [row][col] grid sharing no memory with f
func (f *Framebuffer) Rows() [][]core.Vec3 {
	rows := make([][]core.Vec3, f.Height)
	for row := range rows {
		rows[row] = append([]core.Vec3(nil), f.Pix[row*f.Width:(row+1)*f.Width]...)
	}
	return rows
}

// ToRGBA converts the framebuffer to an 8-bit image without gamma correction
func (f *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for row := 0; row < f.Height; row++ {
		for col := 0; col < f.Width; col++ {
			img.SetRGBA(col, row, vec3ToColor(f.At(row, col)))
		}
	}
	return img
}

// vec3ToColor converts a Vec3 color to RGBA with clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
