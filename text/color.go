package text

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg" // JPG bitmap strikes
	_ "image/png"  // PNG bitmap strikes (CBDT, sbix)
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/citador/citador/internal/cache"
	"github.com/citador/citador/internal/logging"
)

// ColorSource is a colour font, typically an emoji font with CBDT or sbix
// bitmap strikes, used to draw sequences the emoji atlas does not cover.
//
// ColorSource is safe for concurrent use.
type ColorSource struct {
	font *gotext.Font

	shapers sync.Pool
	runs    *cache.Cache[shapeKey, colorRun]
}

// shapedRunCacheSize bounds the shaped runs kept per colour font.
const shapedRunCacheSize = 4096

type shapeKey struct {
	text string
	size float64
}

// NewColorSource parses a colour font from memory.
// Parse failures are reported as *ResourceError.
func NewColorSource(data []byte) (*ColorSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, &ResourceError{Err: err}
	}
	return newColorSource(face.Font), nil
}

// NewColorSourceFromFile loads a colour font from path.
func NewColorSourceFromFile(path string) (*ColorSource, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, &ResourceError{Path: path, Err: err}
	}
	s, err := NewColorSource(data)
	if err != nil {
		var re *ResourceError
		if errors.As(err, &re) {
			re.Path = path
		}
		return nil, err
	}
	return s, nil
}

func newColorSource(f *gotext.Font) *ColorSource {
	s := &ColorSource{
		font: f,
		runs: cache.New[shapeKey, colorRun](shapedRunCacheSize),
	}
	s.shapers.New = func() any { return &shaping.HarfbuzzShaper{} }
	return s
}

// Face returns the colour font at size pixels per em.
func (s *ColorSource) Face(size float64) *ColorFace {
	return &ColorFace{source: s, size: size}
}

// ColorFace is a ColorSource at a fixed size. It shapes its input with
// HarfBuzz so that ZWJ sequences and flags resolve to their ligature glyph.
type ColorFace struct {
	source *ColorSource
	size   float64
}

// Size returns the face size in pixels per em.
func (f *ColorFace) Size() float64 {
	return f.size
}

// colorGlyph is one shaped glyph, positioned relative to the run origin.
type colorGlyph struct {
	id      gotext.GID
	x, y    float64
	advance float64
	tofu    bool
}

type colorRun struct {
	glyphs  []colorGlyph
	advance float64
	ascent  float64
	descent float64
}

// shape returns the shaped run of runes, reusing earlier results. The
// returned run is shared and must not be modified.
func (f *ColorFace) shape(runes []rune) colorRun {
	key := shapeKey{text: string(runes), size: f.size}
	return f.source.runs.GetOrCreate(key, func() colorRun {
		return f.shapeRunes(runes)
	})
}

func (f *ColorFace) shapeRunes(runes []rune) colorRun {
	face := gotext.NewFace(f.source.font)

	sh := f.source.shapers.Get().(*shaping.HarfbuzzShaper)
	out := sh.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      fixed.Int26_6(math.Round(f.size * 64)),
		Script:    language.Common,
		Language:  language.NewLanguage("en"),
	})
	f.source.shapers.Put(sh)

	run := colorRun{
		ascent:  fixedToFloat64(out.LineBounds.Ascent),
		descent: math.Abs(fixedToFloat64(out.LineBounds.Descent)),
	}
	if run.ascent+run.descent == 0 {
		run.ascent = f.size * 0.8
		run.descent = f.size * 0.2
	}

	pen := 0.0
	for _, g := range out.Glyphs {
		adv := fixedToFloat64(g.Advance)
		cg := colorGlyph{
			id:      g.GlyphID,
			x:       pen + fixedToFloat64(g.XOffset),
			y:       -fixedToFloat64(g.YOffset),
			advance: adv,
			tofu:    g.GlyphID == 0,
		}
		if cg.tofu && adv == 0 {
			cg.advance = f.size * tofuWidth
		}
		run.glyphs = append(run.glyphs, cg)
		pen += cg.advance
	}
	run.advance = pen
	return run
}

// Advance returns the width of runes in pixels.
func (f *ColorFace) Advance(runes []rune) float64 {
	return f.shape(runes).advance
}

// Height returns the line box height in whole pixels.
func (f *ColorFace) Height() int {
	run := f.shape([]rune{' '})
	return int(math.Ceil(run.ascent + run.descent))
}

// Ascent returns the distance from the top of the line box to the baseline.
func (f *ColorFace) Ascent() float64 {
	return f.shape([]rune{' '}).ascent
}

// Draw draws runes with the baseline origin at (x, y) and returns the
// advance. Bitmap glyphs keep their own colours, outline glyphs are filled
// with col, and glyphs the font lacks are drawn as an outlined box so the
// result is never blank.
func (f *ColorFace) Draw(dst draw.Image, runes []rune, x, y float64, col color.Color) float64 {
	run := f.shape(runes)
	face := gotext.NewFace(f.source.font)
	upem := float64(f.source.font.Upem())

	for _, g := range run.glyphs {
		gx, gy := x+g.x, y+g.y
		if g.tofu {
			logging.Logger().Warn("glyph missing from colour font, drawing box", "text", string(runes))
			drawTofu(dst, gx, gy, g.advance, run.ascent, col)
			continue
		}

		switch data := face.GlyphData(g.id).(type) {
		case gotext.GlyphBitmap:
			if !f.drawBitmap(dst, data, gx, gy, g.advance, run.ascent) {
				drawTofu(dst, gx, gy, g.advance, run.ascent, col)
			}
		case gotext.GlyphOutline:
			drawOutline(dst, data.Segments, gx, gy, f.size/upem, col)
		case gotext.GlyphSVG:
			drawOutline(dst, data.Outline.Segments, gx, gy, f.size/upem, col)
		default:
			drawTofu(dst, gx, gy, g.advance, run.ascent, col)
		}
	}
	return run.advance
}

// drawBitmap scales a bitmap strike to the glyph advance and composites it
// with its top on the ascent line. It reports false for undecodable data.
func (f *ColorFace) drawBitmap(dst draw.Image, g gotext.GlyphBitmap, x, y, advance, ascent float64) bool {
	if g.Format != gotext.PNG && g.Format != gotext.JPG {
		return false
	}
	img, _, err := image.Decode(bytes.NewReader(g.Data))
	if err != nil {
		return false
	}

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return false
	}
	w := advance
	if w <= 0 {
		w = f.size
	}
	h := w * float64(b.Dy()) / float64(b.Dx())

	left := int(math.Round(x))
	top := int(math.Round(y - ascent))
	r := image.Rect(left, top, left+int(math.Round(w)), top+int(math.Round(h)))
	xdraw.CatmullRom.Scale(dst, r, img, b, xdraw.Over, nil)
	return true
}

// drawOutline fills glyph outline segments given in font units.
func drawOutline(dst draw.Image, segs []ot.Segment, x, y, scale float64, col color.Color) {
	if len(segs) == 0 {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range segs {
		for _, p := range s.ArgsSlice() {
			px, py := x+float64(p.X)*scale, y-float64(p.Y)*scale
			minX, maxX = math.Min(minX, px), math.Max(maxX, px)
			minY, maxY = math.Min(minY, py), math.Max(maxY, py)
		}
	}
	bounds := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	if bounds.Empty() {
		return
	}

	ox, oy := float64(bounds.Min.X), float64(bounds.Min.Y)
	pt := func(p ot.SegmentPoint) (float32, float32) {
		return float32(x + float64(p.X)*scale - ox), float32(y - float64(p.Y)*scale - oy)
	}

	r := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	started := false
	for _, s := range segs {
		switch s.Op {
		case ot.SegmentOpMoveTo:
			if started {
				r.ClosePath()
			}
			r.MoveTo(pt(s.Args[0]))
			started = true
		case ot.SegmentOpLineTo:
			r.LineTo(pt(s.Args[0]))
		case ot.SegmentOpQuadTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			r.QuadTo(bx, by, cx, cy)
		case ot.SegmentOpCubeTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			dx, dy := pt(s.Args[2])
			r.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if started {
		r.ClosePath()
	}
	r.Draw(dst, bounds, image.NewUniform(col), image.Point{})
}

// tofuWidth is the width of a missing-glyph box relative to the face size.
const tofuWidth = 0.6

// drawTofu outlines the box of a missing glyph.
func drawTofu(dst draw.Image, x, y, advance, ascent float64, col color.Color) {
	inset := math.Max(1, advance*0.1)
	left := int(math.Round(x + inset))
	right := int(math.Round(x + advance - inset))
	top := int(math.Round(y - ascent*0.8))
	bottom := int(math.Round(y))
	if right-left < 2 || bottom-top < 2 {
		right, bottom = left+2, top+2
	}

	src := image.NewUniform(col)
	stroke := max(1, (right-left)/10)
	for _, r := range []image.Rectangle{
		image.Rect(left, top, right, top+stroke),
		image.Rect(left, bottom-stroke, right, bottom),
		image.Rect(left, top, left+stroke, bottom),
		image.Rect(right-stroke, top, right, bottom),
	} {
		draw.Draw(dst, r, src, image.Point{}, draw.Over)
	}
}
