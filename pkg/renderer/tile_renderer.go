package renderer

import (
	"context"
	"image"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// TileRenderer traces the primary rays of one tile and their reflections
type TileRenderer struct {
	scene Scene
}

// NewTileRenderer creates a new tile renderer for the given scene
func NewTileRenderer(scene Scene) *TileRenderer {
	return &TileRenderer{scene: scene}
}

// RenderTileBounds renders every pixel of bounds into target. Pixel (i, j)
// lands in row target.Height-j-1, column i. Tiles with disjoint bounds write
// disjoint framebuffer cells. The context is checked once per column.
func (tr *TileRenderer) RenderTileBounds(ctx context.Context, bounds image.Rectangle, target *Framebuffer, depth int) (RenderStats, error) {
	camera := tr.scene.GetCamera()
	stats := RenderStats{Tiles: 1}

	lastColumn := bounds.Min.X - 1
	for pr := range camera.RaysInBounds(bounds, target.Width, target.Height) {
		if pr.I != lastColumn {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
			lastColumn = pr.I
		}

		color := tr.rayColor(pr.Ray, depth, &stats)
		target.Set(target.Height-pr.J-1, pr.I, color)
		stats.Samples++
	}

	return stats, nil
}

// rayColor follows ray through up to depth mirror bounces, summing the local
// shading of each hit scaled by the product of the reflection coefficients so far
func (tr *TileRenderer) rayColor(ray core.Ray, depth int, stats *RenderStats) core.Vec3 {
	color := core.Vec3{}
	reflection := 1.0

	for bounce := 0; bounce < depth; bounce++ {
		stats.RaysTraced++
		traced, ok := tr.scene.TraceRay(ray)
		if !ok {
			stats.EscapedRays++
			break
		}

		color = color.Add(traced.Color.Multiply(reflection))
		reflection *= traced.Shape.GetMaterial().Reflection
		if reflection == 0 {
			break
		}

		origin := traced.Point.Add(traced.Normal.Multiply(core.Epsilon))
		ray = core.NewRay(origin, ray.Direction.Reflect(traced.Normal))
	}

	return color.Clamp(0, 1)
}
