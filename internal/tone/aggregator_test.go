package tone

import (
	"image/color"
	"testing"

	"github.com/carnata/carnata/internal/colour"
)

func TestAggregateUniformSkin(t *testing.T) {
	img := uniformImage(20, 20, skinColour)
	mask := NewClassifier(DefaultClassifierConfig()).Classify(img)

	est := Aggregate(img, mask)

	const tolerance = 2
	if absDiff(est.RGB.R, skinColour.R) > tolerance ||
		absDiff(est.RGB.G, skinColour.G) > tolerance ||
		absDiff(est.RGB.B, skinColour.B) > tolerance {
		t.Errorf("estimate = %v, want within ±%d of %v", est.RGB, tolerance, skinColour)
	}
	if est.Confidence < 0.99 {
		t.Errorf("Confidence = %f, want near 1 for a uniform image", est.Confidence)
	}
}

func TestAggregateEmptyMaskFallsBack(t *testing.T) {
	img := uniformImage(10, 10, colour.RGB{})
	tests := []struct {
		name string
		mask *Mask
	}{
		{name: "nil mask", mask: nil},
		{name: "empty mask", mask: NewMask(10, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est := Aggregate(img, tt.mask)
			if est.Confidence != 0 {
				t.Errorf("Confidence = %f, want 0", est.Confidence)
			}
			if est.Lab != NeutralTone {
				t.Errorf("Lab = %v, want neutral fallback %v", est.Lab, NeutralTone)
			}
			if est.RGB != NeutralTone.RGB() {
				t.Errorf("RGB = %v, want %v", est.RGB, NeutralTone.RGB())
			}
		})
	}
}

func TestAggregateSpreadLowersConfidence(t *testing.T) {
	// Two distant skin-band tones in one mask should score lower than
	// either alone.
	light := colour.Lab{L: 78, A: 10, B: 15}.RGB()
	dark := colour.Lab{L: 40, A: 25, B: 30}.RGB()

	img := uniformImage(20, 20, light)
	for y := 0; y < 20; y++ {
		for x := 10; x < 20; x++ {
			img.SetRGBA(x, y, color.RGBA{R: dark.R, G: dark.G, B: dark.B, A: 255})
		}
	}

	mask := NewMask(20, 20)
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			mask.Set(x, y)
		}
	}

	mixed := Aggregate(img, mask)
	uniform := Aggregate(uniformImage(20, 20, light), mask)

	if mixed.Confidence >= uniform.Confidence {
		t.Errorf("mixed confidence %f should be below uniform confidence %f",
			mixed.Confidence, uniform.Confidence)
	}
	if mixed.Confidence < 0 || mixed.Confidence > 1 {
		t.Errorf("confidence %f outside [0, 1]", mixed.Confidence)
	}
}

func TestAggregateDeterministic(t *testing.T) {
	img := uniformImage(20, 20, skinColour)
	mask := NewClassifier(DefaultClassifierConfig()).Classify(img)

	first := Aggregate(img, mask)
	second := Aggregate(img, mask)

	if first != second {
		t.Errorf("repeated aggregation differs: %v vs %v", first, second)
	}
}

// absDiff returns the absolute difference between two channel values.
func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
