package renderer

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Output pixels after downsampling
	Samples     int           // Supersampled primary rays
	RaysTraced  int           // Primary and reflected rays traced
	EscapedRays int           // Traced rays that hit nothing
	Tiles       int           // Tiles rendered
	Workers     int           // Worker goroutines used
	Elapsed     time.Duration // Wall time of the whole draw
}

// Merge adds the per-tile counters of other into s
func (s *RenderStats) Merge(other RenderStats) {
	s.Samples += other.Samples
	s.RaysTraced += other.RaysTraced
	s.EscapedRays += other.EscapedRays
	s.Tiles += other.Tiles
}

// RaysPerSample returns the average number of traced rays per primary ray
func (s RenderStats) RaysPerSample() float64 {
	if s.Samples == 0 {
		return 0
	}
	return float64(s.RaysTraced) / float64(s.Samples)
}

// Summary formats the statistics for humans, with grouped digits
func (s RenderStats) Summary() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%d pixels, %d samples, %d rays traced (%.2f per sample), %d escaped, %d tiles on %d workers in %v",
		s.TotalPixels, s.Samples, s.RaysTraced, s.RaysPerSample(), s.EscapedRays, s.Tiles, s.Workers, s.Elapsed.Round(time.Millisecond))
}
