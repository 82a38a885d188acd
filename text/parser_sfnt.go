package text

import (
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// parseSFNT parses TTF or OTF data with golang.org/x/image/font/opentype.
func parseSFNT(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &sfntFont{font: f}, nil
}

// sfntFont implements ParsedFont. sfnt.Font methods are safe for concurrent
// use as long as every call gets its own sfnt.Buffer.
type sfntFont struct {
	font *opentype.Font
}

func (f *sfntFont) Name() string {
	var buf sfnt.Buffer
	if name, err := f.font.Name(&buf, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

func (f *sfntFont) GlyphIndex(r rune) (uint16, bool) {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	return uint16(idx), true
}

func (f *sfntFont) GlyphAdvance(glyph uint16, ppem float64, h Hinting) float64 {
	var buf sfnt.Buffer
	adv, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(glyph), toFixed(ppem), mapHinting(h))
	if err != nil {
		return 0
	}
	return fixedToFloat64(adv)
}

func (f *sfntFont) Metrics(ppem float64, h Hinting) FontMetrics {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, toFixed(ppem), mapHinting(h))
	if err != nil {
		return FontMetrics{}
	}
	return FontMetrics{
		Ascent:  fixedToFloat64(m.Ascent),
		Descent: fixedToFloat64(m.Descent),
		LineGap: max(0, fixedToFloat64(m.Height-m.Ascent-m.Descent)),
	}
}

func (f *sfntFont) NewFace(ppem float64, h Hinting) (font.Face, error) {
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    ppem,
		DPI:     72,
		Hinting: mapHinting(h),
	})
	if err != nil {
		return nil, fmt.Errorf("text: create face: %w", err)
	}
	return face, nil
}

// toFixed rounds a pixel size the same way opentype.NewFace does at 72 DPI,
// so measured advances agree with drawn ones.
func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

func mapHinting(h Hinting) font.Hinting {
	switch h {
	case HintingNone:
		return font.HintingNone
	case HintingVertical:
		return font.HintingVertical
	default:
		return font.HintingFull
	}
}
