package text

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

// hasInk reports whether any pixel of img has non-zero alpha.
func hasInk(img *image.RGBA) bool {
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			return true
		}
	}
	return false
}

func TestDraw(t *testing.T) {
	face := regularSource(t).Face(24)
	img := image.NewRGBA(image.Rect(0, 0, 200, 50))

	if err := Draw(img, "Hello", face, 10, 35, color.Black); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if !hasInk(img) {
		t.Error("Draw() left the image blank")
	}
}

func TestDrawEmptyAndNil(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 50, 50))

	if err := Draw(img, "", regularSource(t).Face(12), 0, 20, color.Black); err != nil {
		t.Errorf("Draw(empty) error = %v", err)
	}
	if err := Draw(img, "x", nil, 0, 20, color.Black); err != nil {
		t.Errorf("Draw(nil face) error = %v", err)
	}
	if hasInk(img) {
		t.Error("nothing should have been drawn")
	}
}

func TestDrawerAdvanceMatchesMeasure(t *testing.T) {
	face := regularSource(t).Face(30)
	d, err := NewDrawer(face)
	if err != nil {
		t.Fatalf("NewDrawer() error = %v", err)
	}
	defer func() { _ = d.Close() }()

	img := image.NewRGBA(image.Rect(0, 0, 400, 60))
	for _, s := range []string{"Quote", "W.A.V.E", "iiiiii"} {
		got := d.DrawString(img, s, 0, 40, color.White)
		if want := face.Advance(s); got != want {
			t.Errorf("DrawString(%q) advanced %v, Advance() = %v", s, got, want)
		}
	}
}

func TestDrawDeterministic(t *testing.T) {
	face := regularSource(t).Face(28)
	render := func() []byte {
		img := image.NewRGBA(image.Rect(0, 0, 300, 50))
		if err := Draw(img, "Same every time", face, 5.5, 36, color.NRGBA{R: 200, G: 30, B: 90, A: 255}); err != nil {
			t.Fatalf("Draw() error = %v", err)
		}
		return img.Pix
	}
	if !bytes.Equal(render(), render()) {
		t.Error("two identical draws produced different pixels")
	}
}

func TestDrawColor(t *testing.T) {
	face := regularSource(t).Face(40)
	img := image.NewRGBA(image.Rect(0, 0, 60, 60))
	red := color.RGBA{R: 255, A: 255}

	d, err := NewDrawer(face)
	if err != nil {
		t.Fatalf("NewDrawer() error = %v", err)
	}
	defer func() { _ = d.Close() }()
	d.DrawRune(img, 'H', 5, 45, red)

	found := false
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i+3] == 255 {
			if img.Pix[i] != 255 || img.Pix[i+1] != 0 || img.Pix[i+2] != 0 {
				t.Fatalf("opaque pixel has colour %v, want red", img.Pix[i:i+4])
			}
			found = true
		}
	}
	if !found {
		t.Error("no fully covered pixel drawn")
	}
}
