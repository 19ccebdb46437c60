package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// Scene is the read-only view of a scene the renderer needs
type Scene interface {
	GetCamera() *geometry.Camera
	TraceRay(ray core.Ray) (scene.Shading, bool)
}

// RenderConfig contains configuration for parallel rendering
type RenderConfig struct {
	TileSize   int // Edge of a square tile in supersampled pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   32,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Raytracer renders a scene into a framebuffer
type Raytracer struct {
	scene  Scene
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards progress output.
func NewRaytracer(scene Scene, config RenderConfig, logger core.Logger) *Raytracer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultRenderConfig().TileSize
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:  scene,
		config: config,
		logger: logger,
	}
}

// Draw renders a width × height image. Every output pixel is the mean of an
// antialias × antialias block of supersampled pixels, each of which follows
// its primary ray through at most depth bounces.
func (rt *Raytracer) Draw(ctx context.Context, width, height, depth, antialias int) (*Framebuffer, RenderStats, error) {
	if antialias <= 0 {
		return nil, RenderStats{}, fmt.Errorf("%w: got %d", core.ErrInvalidAntialias, antialias)
	}
	if width <= 0 || height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("%w: got %dx%d", core.ErrInvalidResolution, width, height)
	}

	startTime := time.Now()
	superWidth, superHeight := width*antialias, height*antialias
	supersampled := NewFramebuffer(superWidth, superHeight)
	tiles := NewTileGrid(superWidth, superHeight, rt.config.TileSize)

	workerPool := NewWorkerPool(rt.scene, len(tiles), rt.config.NumWorkers)
	rt.logger.Printf("Rendering %dx%d (x%d supersampling, depth %d) using %d workers...\n",
		width, height, antialias, depth, workerPool.GetNumWorkers())

	workerPool.Start(ctx)
	for taskID, tile := range tiles {
		workerPool.SubmitTask(TileTask{
			Tile:   tile,
			TaskID: taskID,
			Target: supersampled,
			Depth:  depth,
		})
	}

	stats := RenderStats{
		TotalPixels: width * height,
		Workers:     workerPool.GetNumWorkers(),
	}
	progress := newProgressReporter(rt.logger, len(tiles))
	var firstErr error

	for i := 0; i < len(tiles); i++ {
		result, ok := workerPool.GetResult()
		if !ok {
			firstErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		stats.Merge(result.Stats)
		progress.tileDone()
	}
	workerPool.Stop()

	if firstErr != nil {
		rt.logger.Printf("Rendering stopped: %v\n", firstErr)
		return nil, RenderStats{}, firstErr
	}

	img, err := supersampled.Downsample(antialias)
	if err != nil {
		return nil, RenderStats{}, err
	}

	stats.Elapsed = time.Since(startTime)
	return img, stats, nil
}

// progressReporter logs completion in 5% steps
type progressReporter struct {
	logger   core.Logger
	total    int
	done     int
	lastStep int
}

func newProgressReporter(logger core.Logger, total int) *progressReporter {
	logger.Printf("0%%\n")
	return &progressReporter{logger: logger, total: total}
}

func (p *progressReporter) tileDone() {
	p.done++
	step := p.done * 100 / p.total / 5
	if step > p.lastStep {
		p.lastStep = step
		p.logger.Printf("%d%%\n", step*5)
	}
}
