package paragraph

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/citador/citador/atlas"
	"github.com/citador/citador/text"
)

// testStyle returns a 40px Go Regular style with an outline-only fallback
// font and the given atlas.
func testStyle(t *testing.T, store *atlas.Store) Style {
	t.Helper()
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	cs, err := text.NewColorSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewColorSource: %v", err)
	}
	return Style{
		Font:       src.Face(40),
		Emoji:      cs.Face(40),
		Atlas:      store,
		Color:      color.White,
		Background: color.Black,
		WrapWidth:  30,
		Padding:    10,
	}
}

// testAtlas builds a store with a solid w×h bitmap for every key.
func testAtlas(t *testing.T, w, h int, c color.NRGBA, keys ...string) *atlas.Store {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}

	entries := make([]atlas.Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, atlas.Entry{Key: k, Data: buf.Bytes()})
	}
	store, err := atlas.New(entries)
	if err != nil {
		t.Fatalf("atlas.New: %v", err)
	}
	return store
}

// inkCount returns the number of pixels in r that differ from bg.
func inkCount(img *image.RGBA, r image.Rectangle, bg color.RGBA) int {
	n := 0
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) != bg {
				n++
			}
		}
	}
	return n
}

var (
	whiteNRGBA = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	redNRGBA   = color.NRGBA{R: 255, A: 255}
	blackRGBA  = color.RGBA{A: 255}
)
