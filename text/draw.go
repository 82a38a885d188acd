package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Drawer renders runes of a single face onto images.
// Pen positions advance by Face.RuneAdvance, so drawn text lines up with
// measured text exactly.
//
// A Drawer is not safe for concurrent use; create one per render.
type Drawer struct {
	face Face
	xf   font.Face
}

// NewDrawer prepares face for drawing.
func NewDrawer(face Face) (*Drawer, error) {
	xf, err := face.Source().Parsed().NewFace(face.Size(), face.Hinting())
	if err != nil {
		return nil, err
	}
	return &Drawer{face: face, xf: xf}, nil
}

// DrawRune draws r with its origin at (x, y), y being the baseline, and
// returns the advance.
func (d *Drawer) DrawRune(dst draw.Image, r rune, x, y float64, col color.Color) float64 {
	fd := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: d.xf,
		Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(y)},
	}
	fd.DrawString(string(r))
	return d.face.RuneAdvance(r)
}

// DrawString draws s rune by rune starting at (x, y) and returns the total
// advance.
func (d *Drawer) DrawString(dst draw.Image, s string, x, y float64, col color.Color) float64 {
	start := x
	for _, r := range s {
		x += d.DrawRune(dst, r, x, y, col)
	}
	return x - start
}

// Close releases the underlying face.
func (d *Drawer) Close() error {
	return d.xf.Close()
}

// Draw renders s to dst with the baseline origin at (x, y).
func Draw(dst draw.Image, s string, face Face, x, y float64, col color.Color) error {
	if s == "" || face == nil {
		return nil
	}
	d, err := NewDrawer(face)
	if err != nil {
		return err
	}
	defer func() { _ = d.Close() }()

	d.DrawString(dst, s, x, y, col)
	return nil
}
