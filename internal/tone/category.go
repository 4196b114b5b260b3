package tone

import (
	"fmt"
	"strings"
)

// Category is a named skin tone band derived from the aggregated
// lightness value.
type Category string

const (
	CategoryFair   Category = "Fair"
	CategoryLight  Category = "Light"
	CategoryMedium Category = "Medium"
	CategoryOlive  Category = "Olive"
	CategoryTan    Category = "Tan"
	CategoryDeep   Category = "Deep"
	CategoryDark   Category = "Dark"
)

// Categories lists all skin tone categories from lightest to darkest.
func Categories() []Category {
	return []Category{
		CategoryFair,
		CategoryLight,
		CategoryMedium,
		CategoryOlive,
		CategoryTan,
		CategoryDeep,
		CategoryDark,
	}
}

// categoryBand describes one lightness band and the Lab adjustments
// used when recolouring skin towards this category. The a/b offsets
// are small so recoloured previews stay realistic.
type categoryBand struct {
	minL    float64 // inclusive lower lightness bound
	targetL float64 // representative lightness for adjustment
	deltaA  float64
	deltaB  float64
}

// Bands from lightest to darkest; classification walks this in order
// and takes the first band whose minL the lightness clears.
var categoryBands = map[Category]categoryBand{
	CategoryFair:   {minL: 75, targetL: 78, deltaA: -2, deltaB: -2},
	CategoryLight:  {minL: 70, targetL: 72, deltaA: -1, deltaB: -1},
	CategoryMedium: {minL: 65, targetL: 65, deltaA: 0, deltaB: 0},
	CategoryOlive:  {minL: 60, targetL: 62, deltaA: 1, deltaB: 2},
	CategoryTan:    {minL: 55, targetL: 58, deltaA: 2, deltaB: 4},
	CategoryDeep:   {minL: 50, targetL: 52, deltaA: 3, deltaB: 5},
	CategoryDark:   {minL: 0, targetL: 45, deltaA: 4, deltaB: 6},
}

// CategoryForLightness maps an aggregated Lab lightness to its
// category.
func CategoryForLightness(l float64) Category {
	for _, cat := range Categories() {
		if l >= categoryBands[cat].minL {
			return cat
		}
	}
	return CategoryDark
}

// Categorise maps a tone estimate to its category. A zero-confidence
// estimate maps to Medium, the neutral default.
func Categorise(est Estimate) Category {
	if est.Confidence == 0 {
		return CategoryMedium
	}
	return CategoryForLightness(est.Lab.L)
}

// ParseCategory parses a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	for _, cat := range Categories() {
		if strings.EqualFold(s, string(cat)) {
			return cat, nil
		}
	}
	return "", fmt.Errorf("unknown skin tone category: %q (valid: %v)", s, Categories())
}

// TargetLightness returns the representative Lab lightness for a
// category, used when recolouring skin towards it. Unknown categories
// fall back to Medium.
func (c Category) TargetLightness() float64 {
	if band, ok := categoryBands[c]; ok {
		return band.targetL
	}
	return categoryBands[CategoryMedium].targetL
}

// chromaOffsets returns the a/b adjustment applied when recolouring
// towards the category.
func (c Category) chromaOffsets() (deltaA, deltaB float64) {
	band, ok := categoryBands[c]
	if !ok {
		return 0, 0
	}
	return band.deltaA, band.deltaB
}
