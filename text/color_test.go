package text

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// outlineColorSource uses an outline-only font as the colour source, which
// exercises the vector and missing-glyph paths.
func outlineColorSource(t *testing.T) *ColorSource {
	t.Helper()
	s, err := NewColorSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewColorSource(goregular) error = %v", err)
	}
	return s
}

func TestNewColorSourceErrors(t *testing.T) {
	if _, err := NewColorSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewColorSource(nil) error = %v, want ErrEmptyFontData", err)
	}

	var re *ResourceError
	if _, err := NewColorSource([]byte("garbage")); !errors.As(err, &re) {
		t.Errorf("NewColorSource(garbage) error = %v, want *ResourceError", err)
	}

	path := filepath.Join(t.TempDir(), "NotoColorEmoji.ttf")
	if _, err := NewColorSourceFromFile(path); !errors.As(err, &re) || re.Path != path {
		t.Errorf("NewColorSourceFromFile(missing) error = %v, want *ResourceError", err)
	}
}

func TestColorFaceMeasure(t *testing.T) {
	face := outlineColorSource(t).Face(40)

	if face.Size() != 40 {
		t.Errorf("Size() = %v, want 40", face.Size())
	}
	if h := face.Height(); h <= 0 {
		t.Errorf("Height() = %d, want > 0", h)
	}
	if a := face.Ascent(); a <= 0 || a > float64(face.Height()) {
		t.Errorf("Ascent() = %v, want within (0, %d]", a, face.Height())
	}
	if w := face.Advance([]rune("AB")); w <= face.Advance([]rune("A")) {
		t.Errorf("Advance(AB) = %v, want more than Advance(A)", w)
	}
}

func TestColorFaceDrawOutline(t *testing.T) {
	face := outlineColorSource(t).Face(40)
	img := image.NewRGBA(image.Rect(0, 0, 80, 60))

	adv := face.Draw(img, []rune("A"), 10, 45, color.White)
	if adv <= 0 {
		t.Errorf("Draw returned advance %v, want > 0", adv)
	}
	if !hasInk(img) {
		t.Error("outline glyph was not drawn")
	}
}

func TestColorFaceMissingGlyphDrawsBox(t *testing.T) {
	face := outlineColorSource(t).Face(40)
	img := image.NewRGBA(image.Rect(0, 0, 120, 60))

	adv := face.Draw(img, []rune{0x1F9A9}, 10, 45, color.White)
	if adv <= 0 {
		t.Errorf("missing glyph advance = %v, want > 0", adv)
	}
	if !hasInk(img) {
		t.Error("missing glyph left the image blank")
	}
}

func TestColorFaceReusesShapedRuns(t *testing.T) {
	src := outlineColorSource(t)
	small, large := src.Face(20), src.Face(40)

	first := small.Advance([]rune("Go"))
	if again := small.Advance([]rune("Go")); again != first {
		t.Errorf("second Advance = %v, want %v", again, first)
	}
	if n := src.runs.Len(); n != 1 {
		t.Errorf("cached runs = %d, want 1", n)
	}

	if large.Advance([]rune("Go")) <= first {
		t.Error("larger face is not wider")
	}
	if n := src.runs.Len(); n != 2 {
		t.Errorf("cached runs = %d, want 2 (one per size)", n)
	}
}
