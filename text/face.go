package text

// Face is a font at a specific size.
// It is a lightweight value created from a FontSource and is safe for
// concurrent use.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	Metrics() Metrics

	// Advance returns the sum of the glyph advances of s in pixels.
	// Kerning is not applied.
	Advance(s string) float64

	// RuneAdvance returns the advance of a single rune in pixels.
	RuneAdvance(r rune) float64

	// HasGlyph reports whether the font maps r to a glyph.
	HasGlyph(r rune) bool

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// Size returns the size of this face in pixels per em.
	Size() float64

	// Hinting returns the hinting mode of this face.
	Hinting() Hinting

	private()
}

type sourceFace struct {
	source *FontSource
	size   float64
	config faceConfig
}

func (f *sourceFace) Metrics() Metrics {
	m := f.source.Parsed().Metrics(f.size, f.config.hinting)

	descent := m.Descent
	if descent < 0 {
		descent = -descent
	}
	return Metrics{
		Ascent:  m.Ascent,
		Descent: descent,
		LineGap: m.LineGap,
	}
}

func (f *sourceFace) Advance(s string) float64 {
	total := 0.0
	for _, r := range s {
		total += f.RuneAdvance(r)
	}
	return total
}

func (f *sourceFace) RuneAdvance(r rune) float64 {
	parsed := f.source.Parsed()
	gid, _ := parsed.GlyphIndex(r)
	return parsed.GlyphAdvance(gid, f.size, f.config.hinting)
}

func (f *sourceFace) HasGlyph(r rune) bool {
	_, ok := f.source.Parsed().GlyphIndex(r)
	return ok
}

func (f *sourceFace) Source() *FontSource { return f.source }
func (f *sourceFace) Size() float64       { return f.size }
func (f *sourceFace) Hinting() Hinting    { return f.config.hinting }
func (f *sourceFace) private()            {}
