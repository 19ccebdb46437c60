package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/loaders"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Built-in scene name or path to a .json scene file")
	width := flag.Int("width", 400, "Output image width in pixels")
	height := flag.Int("height", 300, "Output image height in pixels")
	depth := flag.Int("depth", 5, "Maximum number of reflection bounces per ray")
	antialias := flag.Int("antialias", 2, "Supersampling factor per axis (N gives NxN samples per pixel)")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	tileSize := flag.Int("tile", 32, "Tile edge in supersampled pixels")
	out := flag.String("out", "", "Output file (.png, .jpg, .bmp, .tif); defaults to output/<scene>/render_<timestamp>.png")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Recursive Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, info := range scene.ListScenes() {
			fmt.Printf("  %-8s - %s\n", info.Name, info.Description)
		}
		fmt.Println("  <file>.json - scene description, see scenes/spheres.json")
		return
	}

	if err := run(*sceneType, *width, *height, *depth, *antialias, *workers, *tileSize, *out); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneType string, width, height, depth, antialias, workers, tileSize int, out string) error {
	fmt.Println("Starting Recursive Raytracer...")

	selectedScene, err := createScene(sceneType)
	if err != nil {
		return err
	}

	filename := out
	if filename == "" {
		outputDir := outputDirFor(sceneType)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}
	if _, err := loaders.FormatFromPath(filename); err != nil {
		return err
	}

	// Ctrl-C stops the render between pixels
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	raytracer := renderer.NewRaytracer(selectedScene, renderer.RenderConfig{
		TileSize:   tileSize,
		NumWorkers: workers,
	}, renderer.NewDefaultLogger())

	img, stats, err := raytracer.Draw(ctx, width, height, depth, antialias)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	fmt.Printf("Render completed: %s\n", stats.Summary())

	if err := loaders.SaveImage(filename, img.ToRGBA()); err != nil {
		return err
	}
	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene resolves a built-in scene name or a JSON scene file
func createScene(sceneType string) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("scene name is empty")
	}
	if strings.HasSuffix(strings.ToLower(sceneType), ".json") {
		return loaders.LoadSceneJSON(sceneType)
	}
	return scene.Lookup(sceneType)
}

// outputDirFor returns output/<name>, where name is the scene name or the JSON file's base name
func outputDirFor(sceneType string) string {
	name := sceneType
	if strings.HasSuffix(strings.ToLower(name), ".json") {
		name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	return filepath.Join("output", name)
}
