package text

import "math"

// Metrics holds font metrics of a face, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font
	// (positive, below the baseline).
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64
}

// LineHeight returns the recommended distance between baselines.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// BoxHeight returns the height of a line box without the gap, rounded up
// to whole pixels.
func (m Metrics) BoxHeight() int {
	return int(math.Ceil(m.Ascent + m.Descent))
}
