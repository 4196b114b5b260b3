package tone

import (
	"image"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/carnata/carnata/internal/colour"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	analyzer, err := NewAnalyzer(DefaultConfig(), WithLogger(hclog.NewNullLogger()))
	if err != nil {
		t.Fatalf("NewAnalyzer failed: %v", err)
	}
	return analyzer
}

func TestAnalyzeUniformSkinImage(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	result, err := analyzer.Analyze(uniformImage(20, 20, skinColour))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.Mask.Coverage() != 1.0 {
		t.Errorf("Coverage = %f, want 1.0", result.Mask.Coverage())
	}
	if result.Estimate.Confidence < 0.99 {
		t.Errorf("Confidence = %f, want near 1", result.Estimate.Confidence)
	}

	const tolerance = 2
	if absDiff(result.Estimate.RGB.R, skinColour.R) > tolerance ||
		absDiff(result.Estimate.RGB.G, skinColour.G) > tolerance ||
		absDiff(result.Estimate.RGB.B, skinColour.B) > tolerance {
		t.Errorf("estimate %v not within ±%d of %v", result.Estimate.RGB, tolerance, skinColour)
	}

	if result.Palette.Len() < 4 || result.Palette.Len() > 6 {
		t.Errorf("palette size %d outside [4, 6]", result.Palette.Len())
	}
	if len(result.Curated) == 0 {
		t.Error("curated recommendations missing")
	}
}

func TestAnalyzeNoSkinFallsBack(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	tests := []struct {
		name string
		fill colour.RGB
	}{
		{name: "all black", fill: colour.RGB{}},
		{name: "all white", fill: colour.RGB{R: 255, G: 255, B: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := analyzer.Analyze(uniformImage(20, 20, tt.fill))
			if err != nil {
				t.Fatalf("Analyze must not fail on skinless images: %v", err)
			}
			if result.Estimate.Confidence != 0 {
				t.Errorf("Confidence = %f, want 0", result.Estimate.Confidence)
			}
			if result.Category != CategoryMedium {
				t.Errorf("Category = %s, want Medium fallback", result.Category)
			}
			if result.Palette.Len() < 4 || result.Palette.Len() > 6 {
				t.Errorf("fallback palette size %d outside [4, 6]", result.Palette.Len())
			}
		})
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	analyzer := newTestAnalyzer(t)
	img := uniformImage(20, 20, skinColour)

	first, err := analyzer.Analyze(img)
	if err != nil {
		t.Fatal(err)
	}
	second, err := analyzer.Analyze(img)
	if err != nil {
		t.Fatal(err)
	}

	if first.Estimate != second.Estimate {
		t.Errorf("estimates differ: %v vs %v", first.Estimate, second.Estimate)
	}
	for i := range first.Palette.Colours {
		if first.Palette.Colours[i] != second.Palette.Colours[i] {
			t.Errorf("palette entry %d differs", i)
		}
	}
}

func TestAnalyzeInvalidImage(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	tests := []struct {
		name string
		img  image.Image
	}{
		{name: "nil image", img: nil},
		{name: "zero width", img: image.NewRGBA(image.Rect(0, 0, 0, 10))},
		{name: "zero height", img: image.NewRGBA(image.Rect(0, 0, 10, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := analyzer.Analyze(tt.img); err == nil {
				t.Error("Analyze accepted a malformed image")
			}
		})
	}
}

func TestNewAnalyzerRejectsInvalidConfig(t *testing.T) {
	config := DefaultConfig()
	config.Classifier.MinPixels = -5

	if _, err := NewAnalyzer(config); err == nil {
		t.Error("NewAnalyzer accepted invalid configuration")
	}
}
