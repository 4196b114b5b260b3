// Package colour provides colour primitives for the skin tone pipeline.
package colour

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Lab represents a colour in CIE L*a*b* space on the conventional
// scale: L in [0, 100], a and b roughly in [-127, 127]. Lab distance
// approximates perceived colour difference, which is why the skin
// classifier and tone blending operate here rather than in RGB.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// RGBToLab converts an RGB colour to CIE Lab (D65 reference white).
func RGBToLab(rgb RGB) Lab {
	l, a, b := rgb.colorful().Lab()
	// go-colorful keeps Lab components on a [0, 1] scale.
	return Lab{L: l * 100, A: a * 100, B: b * 100}
}

// RGB converts the Lab colour back to 8-bit RGB. Colours outside the
// sRGB gamut are clamped, never rejected; the conversion is total over
// any Lab input.
func (lab Lab) RGB() RGB {
	c := colorful.Lab(lab.L/100, lab.A/100, lab.B/100).Clamped()
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}
}

// Distance returns the Euclidean distance to another Lab colour.
// On this scale a distance of ~2.3 corresponds to a just-noticeable
// difference.
func (lab Lab) Distance(other Lab) float64 {
	dl := lab.L - other.L
	da := lab.A - other.A
	db := lab.B - other.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// Lerp linearly interpolates from lab towards target by t in [0, 1].
// t is clamped; t=0 returns lab unchanged and t=1 returns target.
func (lab Lab) Lerp(target Lab, t float64) Lab {
	t = clamp01(t)
	return Lab{
		L: lab.L + (target.L-lab.L)*t,
		A: lab.A + (target.A-lab.A)*t,
		B: lab.B + (target.B-lab.B)*t,
	}
}

// Clamp restricts the Lab components to their conventional ranges:
// L to [0, 100], a and b to [-127, 127].
func (lab Lab) Clamp() Lab {
	return Lab{
		L: math.Max(0, math.Min(100, lab.L)),
		A: math.Max(-127, math.Min(127, lab.A)),
		B: math.Max(-127, math.Min(127, lab.B)),
	}
}
