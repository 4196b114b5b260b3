package tone

import (
	"github.com/carnata/carnata/internal/colour"
)

// Palette generation constants. The angular offsets and
// lightness/saturation bands are fixed aesthetic policy: the same tone
// always yields the same palette.
const (
	// Hue offsets around the colour wheel relative to the tone's hue.
	complementOffset = 180.0
	splitOffsetLow   = 150.0
	splitOffsetHigh  = 210.0

	// Saturation and lightness bands for generated entries.
	accentSaturation = 0.55
	accentLightness  = 0.45
	tintLightness    = 0.80
	shadeLightness   = 0.25
	mutedSaturation  = 0.25

	// Below this saturation the tone is treated as achromatic and the
	// neutral-safe anchor hue is used instead of the tone's own hue.
	achromaticThreshold = 0.05

	// neutralAnchorHue is a cool slate used to anchor palettes for
	// achromatic or zero-confidence tones.
	neutralAnchorHue = 210.0
)

// Recommend derives a complementary colour palette from a tone
// estimate. The tone's hue anchors the wheel; entries are placed at
// fixed angular offsets (complement plus its split-complement
// neighbours) with fixed lightness banding, followed by a lighter tint
// and a darker muted shade of the anchor. Deterministic and always
// 4-6 entries.
func Recommend(est Estimate) *colour.Palette {
	h, s, _ := est.RGB.HSL()

	// Degenerate tones (achromatic colour or the zero-confidence
	// fallback) get a neutral-safe anchor so the palette is still
	// coherent rather than hue-noise from grey.
	if s < achromaticThreshold || est.Confidence == 0 {
		h = neutralAnchorHue
	}

	colours := []colour.RGB{
		colour.FromHSL(wrapHue(h+complementOffset), accentSaturation, accentLightness),
		colour.FromHSL(wrapHue(h+splitOffsetLow), accentSaturation, accentLightness),
		colour.FromHSL(wrapHue(h+splitOffsetHigh), accentSaturation, accentLightness),
		colour.FromHSL(wrapHue(h+complementOffset), accentSaturation, tintLightness),
		colour.FromHSL(h, mutedSaturation, shadeLightness),
	}

	return colour.NewPalette(colours)
}

// wrapHue normalises a hue angle to [0, 360).
func wrapHue(h float64) float64 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}

// curated holds the hand-picked wardrobe colours recommended for each
// skin tone category, as hex strings.
var curated = map[Category][]string{
	CategoryFair: {
		"#e6b3b3", // soft pink
		"#d1e6b3", // soft lime
		"#b3e6cc", // mint
		"#b3cce6", // baby blue
		"#d1b3e6", // lavender
		"#800000", // burgundy
		"#008080", // teal
	},
	CategoryLight: {
		"#ffb6c1", // light pink
		"#98fb98", // pale green
		"#add8e6", // light blue
		"#dda0dd", // plum
		"#f08080", // coral
		"#4682b4", // steel blue
		"#556b2f", // olive green
	},
	CategoryMedium: {
		"#ff6347", // tomato
		"#6b8e23", // olive drab
		"#4169e1", // royal blue
		"#ba55d3", // medium orchid
		"#20b2aa", // light sea green
		"#cd5c5c", // indian red
		"#daa520", // goldenrod
	},
	CategoryOlive: {
		"#ff4500", // orange red
		"#2e8b57", // sea green
		"#9932cc", // dark orchid
		"#8b4513", // saddle brown
		"#008b8b", // dark cyan
		"#b8860b", // dark goldenrod
		"#c71585", // medium violet red
	},
	CategoryTan: {
		"#ff8c00", // dark orange
		"#006400", // dark green
		"#8b008b", // dark magenta
		"#e9967a", // dark salmon
		"#8fbc8f", // dark sea green
		"#483d8b", // dark slate blue
		"#b22222", // firebrick
	},
	CategoryDeep: {
		"#ffa500", // orange
		"#00ff00", // lime
		"#ff00ff", // magenta
		"#00ffff", // cyan
		"#ffff00", // yellow
		"#800080", // purple
		"#dc143c", // crimson
	},
	CategoryDark: {
		"#ffd700", // gold
		"#7cfc00", // lawn green
		"#ff1493", // deep pink
		"#00bfff", // deep sky blue
		"#f0e68c", // khaki
		"#adff2f", // green yellow
		"#ff69b4", // hot pink
	},
}

// Curated returns the hand-picked wardrobe colours for a skin tone
// category. Unknown categories fall back to Medium.
func Curated(cat Category) []colour.RGB {
	hexes, ok := curated[cat]
	if !ok {
		hexes = curated[CategoryMedium]
	}

	colours := make([]colour.RGB, len(hexes))
	for i, hex := range hexes {
		c, err := colour.ParseHex(hex)
		if err != nil {
			// The table is compile-time data; a parse failure is a
			// programming error, keep the zero value visible.
			continue
		}
		colours[i] = c
	}
	return colours
}
