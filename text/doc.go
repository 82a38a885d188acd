// Package text loads fonts, measures and draws glyphs, and wraps text for
// the paragraph renderer.
//
// The pipeline separates heavyweight and lightweight objects:
//
//   - FontSource: a parsed font file, shared across the application
//   - Face: a FontSource at a specific pixel size
//   - Drawer: draws a Face onto an image, one per render
//   - ColorSource and ColorFace: a colour emoji font used when the emoji
//     atlas has no bitmap for a sequence
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("fonts/Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	face := source.Face(109)
//
//	width := face.Advance("Hello")
//	_ = text.Draw(img, "Hello", face, 10, 10+face.Metrics().Ascent, color.White)
//
// Advances are per character. Kerning and ligatures are not applied to
// script text, so the measured width of a line always equals the sum of
// its drawn advances.
//
// # Wrapping
//
// Wrap splits text into lines of a fixed number of visible characters,
// counting grapheme clusters, and keeps explicit newlines inside the line.
//
// # Parsing
//
// Fonts are parsed with golang.org/x/image/font/opentype. FontSource.Parsed
// exposes the result as a ParsedFont.
package text
