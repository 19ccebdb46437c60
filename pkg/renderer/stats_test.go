package renderer

import (
	"strings"
	"testing"
	"time"
)

func TestRenderStats_Merge(t *testing.T) {
	var total RenderStats
	total.Merge(RenderStats{Samples: 4, RaysTraced: 10, EscapedRays: 2, Tiles: 1})
	total.Merge(RenderStats{Samples: 6, RaysTraced: 5, EscapedRays: 6, Tiles: 1})

	if total.Samples != 10 || total.RaysTraced != 15 || total.EscapedRays != 8 || total.Tiles != 2 {
		t.Errorf("Unexpected merged stats: %+v", total)
	}
	if got := total.RaysPerSample(); got != 1.5 {
		t.Errorf("Expected 1.5 rays per sample, got %v", got)
	}
	if got := (RenderStats{}).RaysPerSample(); got != 0 {
		t.Errorf("Expected 0 rays per sample for empty stats, got %v", got)
	}
}

func TestRenderStats_Summary(t *testing.T) {
	stats := RenderStats{
		TotalPixels: 1234567,
		Samples:     2000,
		RaysTraced:  3000,
		Tiles:       4,
		Workers:     2,
		Elapsed:     1500 * time.Millisecond,
	}

	summary := stats.Summary()
	for _, want := range []string{"1,234,567 pixels", "2,000 samples", "3,000 rays traced", "1.50 per sample", "4 tiles on 2 workers"} {
		if !strings.Contains(summary, want) {
			t.Errorf("Expected summary to contain %q, got %q", want, summary)
		}
	}
}
