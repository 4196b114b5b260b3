package tone

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/carnata/carnata/internal/colour"
)

// rgba converts an RGB value to an opaque color.RGBA pixel.
func rgba(c colour.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Adjust recolours the masked region of an image towards a target
// colour for preview. Masked pixels are interpolated from their
// original colour to the target in Lab space, which blends more
// naturally than RGB interpolation; pixels outside the mask pass
// through unchanged. Strength is clamped to [0, 1]: 0 returns a
// pixel-identical copy, 1 replaces masked pixels with the target
// (within Lab round-trip tolerance). The input image is never
// mutated.
func Adjust(img image.Image, mask *Mask, target colour.RGB, strength float64) image.Image {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)

	if strength <= 0 || mask == nil || mask.Empty() {
		return out
	}
	if strength > 1 {
		strength = 1
	}

	targetLab := colour.RGBToLab(target)

	for y := 0; y < mask.height; y++ {
		for x := 0; x < mask.width; x++ {
			if !mask.At(x, y) {
				continue
			}
			px := bounds.Min.X + x
			py := bounds.Min.Y + y
			lab := colour.RGBToLab(colour.ToRGB(img.At(px, py)))
			blended := lab.Lerp(targetLab, strength).RGB()
			out.SetRGBA(px, py, rgba(blended))
		}
	}

	return out
}

// AdjustToCategory recolours the masked region towards a named skin
// tone category. The mean lightness of the masked pixels is shifted to
// the category's target lightness, with the category's small a/b
// offsets applied on top, all clamped in Lab. This mirrors the
// "preview a different tone" adjustment: relative lightness detail is
// preserved rather than flattened to a single colour.
func AdjustToCategory(img image.Image, mask *Mask, cat Category) image.Image {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)

	if mask == nil || mask.Empty() {
		return out
	}

	// Shift by the difference between the current mean lightness and
	// the category target so highlights and shadows keep their shape.
	current := Aggregate(img, mask)
	deltaL := cat.TargetLightness() - current.Lab.L
	deltaA, deltaB := cat.chromaOffsets()

	for y := 0; y < mask.height; y++ {
		for x := 0; x < mask.width; x++ {
			if !mask.At(x, y) {
				continue
			}
			px := bounds.Min.X + x
			py := bounds.Min.Y + y
			lab := colour.RGBToLab(colour.ToRGB(img.At(px, py)))
			shifted := colour.Lab{
				L: lab.L + deltaL,
				A: lab.A + deltaA,
				B: lab.B + deltaB,
			}.Clamp()
			out.SetRGBA(px, py, rgba(shifted.RGB()))
		}
	}

	return out
}
