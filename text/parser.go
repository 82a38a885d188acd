package text

import "golang.org/x/image/font"

// ParsedFont is a parsed font file. Sizes are given in pixels per em.
// Implementations must be safe for concurrent use.
type ParsedFont interface {
	// Name returns the font family name, or "" if the font has none.
	Name() string

	// GlyphIndex returns the glyph for r and whether the font maps r at all.
	GlyphIndex(r rune) (uint16, bool)

	// GlyphAdvance returns the horizontal advance of a glyph in pixels.
	GlyphAdvance(glyph uint16, ppem float64, h Hinting) float64

	// Metrics returns the font metrics at the given size.
	Metrics(ppem float64, h Hinting) FontMetrics

	// NewFace returns an x/image face for drawing at the given size.
	// The returned face is not safe for concurrent use.
	NewFace(ppem float64, h Hinting) (font.Face, error)
}

// FontMetrics holds font-level metrics at a specific size.
type FontMetrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font
	// (positive, below the baseline).
	Descent float64

	// LineGap is the recommended extra space between lines.
	LineGap float64
}
