package tone

import (
	"image"
	"math"

	"github.com/carnata/carnata/internal/colour"
)

// NeutralTone is the fallback skin tone returned when no skin pixels
// were found: the centre of the medium skin band in Lab space.
var NeutralTone = colour.Lab{L: 65, A: 18, B: 25}

// maxSpread is the Lab spread at which confidence reaches zero.
// It is roughly the radius of the lenient skin region, so a uniform
// patch scores near 1 and a mask spanning the whole region decays to 0.
const maxSpread = 40.0

// Estimate is a representative skin tone with a confidence measure.
// Confidence is in [0, 1]: 1 means the masked pixels clustered tightly
// around the estimate, 0 means no skin was found and the neutral
// fallback was used. Callers should check Confidence before presenting
// the estimate as a detected tone.
type Estimate struct {
	RGB        colour.RGB `json:"rgb"`
	Lab        colour.Lab `json:"lab"`
	Confidence float64    `json:"confidence"`
}

// Hex returns the estimate's colour as a hex string.
func (e Estimate) Hex() string {
	return e.RGB.Hex()
}

// Aggregate reduces the masked pixels of an image to a single
// representative tone. The estimate is the mean Lab colour of the
// masked pixels; confidence is the inverse of their spread (RMS Lab
// distance from the mean). An empty mask yields NeutralTone with
// confidence 0 rather than an error.
func Aggregate(img image.Image, mask *Mask) Estimate {
	if mask == nil || mask.Empty() {
		return Estimate{
			RGB:        NeutralTone.RGB(),
			Lab:        NeutralTone,
			Confidence: 0,
		}
	}

	bounds := img.Bounds()
	labs := make([]colour.Lab, 0, mask.Count())
	var sum colour.Lab
	for y := 0; y < mask.height; y++ {
		for x := 0; x < mask.width; x++ {
			if !mask.At(x, y) {
				continue
			}
			lab := colour.RGBToLab(colour.ToRGB(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
			labs = append(labs, lab)
			sum.L += lab.L
			sum.A += lab.A
			sum.B += lab.B
		}
	}

	n := float64(len(labs))
	mean := colour.Lab{L: sum.L / n, A: sum.A / n, B: sum.B / n}

	// RMS distance from the mean measures how tightly the skin pixels
	// clustered.
	var sumSq float64
	for _, lab := range labs {
		d := lab.Distance(mean)
		sumSq += d * d
	}
	spread := math.Sqrt(sumSq / n)

	confidence := 1 - spread/maxSpread
	if confidence < 0 {
		confidence = 0
	}

	return Estimate{
		RGB:        mean.RGB(),
		Lab:        mean,
		Confidence: confidence,
	}
}
