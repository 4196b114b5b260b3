// Package tone implements the skin tone analysis pipeline: classifying
// skin pixels in CIE Lab space, aggregating them into a representative
// tone estimate, recommending complementary colour palettes, and
// recolouring the detected region for previews.
package tone

import "image"

// Mask is a per-pixel boolean selection over an image identifying the
// pixels classified as skin. It is derived per analysis and never
// shared between requests.
type Mask struct {
	width  int
	height int
	bits   []bool
	count  int
}

// NewMask creates an empty mask for an image of the given dimensions.
func NewMask(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Mask{
		width:  width,
		height: height,
		bits:   make([]bool, width*height),
	}
}

// Bounds returns the rectangle covered by the mask.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Set marks the pixel at (x, y) as skin. Out-of-range coordinates are
// ignored.
func (m *Mask) Set(x, y int) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	idx := y*m.width + x
	if !m.bits[idx] {
		m.bits[idx] = true
		m.count++
	}
}

// At reports whether the pixel at (x, y) is marked as skin.
// Out-of-range coordinates report false.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	return m.bits[y*m.width+x]
}

// Count returns the number of pixels marked as skin.
func (m *Mask) Count() int {
	return m.count
}

// Coverage returns the fraction of pixels marked as skin, in [0, 1].
func (m *Mask) Coverage() float64 {
	total := m.width * m.height
	if total == 0 {
		return 0
	}
	return float64(m.count) / float64(total)
}

// Empty reports whether no pixels are marked as skin.
func (m *Mask) Empty() bool {
	return m.count == 0
}
