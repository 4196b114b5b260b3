package tone

import (
	"fmt"
	"image"

	"github.com/carnata/carnata/internal/colour"
)

// Band is an inclusive numeric range on one Lab axis.
type Band struct {
	Min float64
	Max float64
}

// Contains reports whether v lies inside the band.
func (b Band) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// LabRegion is an axis-aligned region of Lab space used to select
// skin-like pixels: lightness excludes near-black and near-white, and
// the two chroma axes bound the warm, low-to-moderate saturation range
// human skin occupies.
type LabRegion struct {
	L Band
	A Band
	B Band
}

// Contains reports whether the Lab colour lies inside the region.
func (r LabRegion) Contains(lab colour.Lab) bool {
	return r.L.Contains(lab.L) && r.A.Contains(lab.A) && r.B.Contains(lab.B)
}

// ClassifierConfig holds the tunable thresholds for skin pixel
// classification. The defaults are empirically chosen bands; they are
// configuration rather than literals so they can be tuned without
// touching classifier code.
type ClassifierConfig struct {
	// Strict is the primary skin region tried first.
	Strict LabRegion

	// Lenient is a wider fallback region used when the strict pass
	// selects fewer than MinPixels pixels.
	Lenient LabRegion

	// MinPixels is the minimum number of matched pixels for a pass to
	// be considered meaningful.
	MinPixels int
}

// DefaultClassifierConfig returns the default classifier thresholds.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		Strict: LabRegion{
			L: Band{Min: 50, Max: 80},
			A: Band{Min: 5, Max: 30},
			B: Band{Min: 10, Max: 40},
		},
		Lenient: LabRegion{
			L: Band{Min: 30, Max: 90},
			A: Band{Min: 0, Max: 35},
			B: Band{Min: 5, Max: 45},
		},
		MinPixels: 100,
	}
}

// Validate validates the classifier configuration.
func (c ClassifierConfig) Validate() error {
	for _, band := range []struct {
		name string
		b    Band
	}{
		{"strict L", c.Strict.L}, {"strict a", c.Strict.A}, {"strict b", c.Strict.B},
		{"lenient L", c.Lenient.L}, {"lenient a", c.Lenient.A}, {"lenient b", c.Lenient.B},
	} {
		if band.b.Min > band.b.Max {
			return fmt.Errorf("invalid %s band: min %.1f > max %.1f", band.name, band.b.Min, band.b.Max)
		}
	}
	if c.MinPixels < 0 {
		return fmt.Errorf("min pixels must not be negative, got %d", c.MinPixels)
	}
	return nil
}

// Classifier selects the pixels of an image plausibly representing
// skin. It is stateless and deterministic: the same image and
// configuration always yield the same mask.
type Classifier struct {
	config ClassifierConfig
}

// NewClassifier creates a Classifier with the given configuration.
func NewClassifier(config ClassifierConfig) *Classifier {
	return &Classifier{config: config}
}

// Classify returns the skin mask for the image. The strict region is
// tried first; if it matches fewer than MinPixels pixels the lenient
// region is used instead. An empty mask is a valid result, not an
// error - the aggregator supplies the fallback tone.
func (c *Classifier) Classify(img image.Image) *Mask {
	mask := classifyRegion(img, c.config.Strict)
	if mask.Count() >= c.config.MinPixels {
		return mask
	}

	mask = classifyRegion(img, c.config.Lenient)
	if mask.Count() >= c.config.MinPixels {
		return mask
	}

	// Neither pass found a meaningful amount of skin.
	bounds := img.Bounds()
	return NewMask(bounds.Dx(), bounds.Dy())
}

// classifyRegion marks every pixel whose Lab colour falls inside the
// region.
func classifyRegion(img image.Image, region LabRegion) *Mask {
	bounds := img.Bounds()
	mask := NewMask(bounds.Dx(), bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			lab := colour.RGBToLab(colour.ToRGB(img.At(x, y)))
			if region.Contains(lab) {
				mask.Set(x-bounds.Min.X, y-bounds.Min.Y)
			}
		}
	}

	return mask
}
