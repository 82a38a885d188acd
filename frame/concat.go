package frame

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ConcatHorizontal places a to the left of b.
func ConcatHorizontal(a, b image.Image, opts Options) (*image.NRGBA, error) {
	if err := check(a, b, opts, true); err != nil {
		return nil, err
	}
	if opts.Resize {
		a, b = matchHeights(a, b, opts.ResizeMode)
	}

	ab, bb := a.Bounds(), b.Bounds()
	mp := opts.Margin + opts.Padding
	maxH := max(ab.Dy(), bb.Dy())
	width := ab.Dx() + bb.Dx() + 2*opts.Padding + 4*opts.Margin
	height := maxH + 2*mp

	ya, yb := mp, mp
	switch opts.Align {
	case Center:
		ya += (maxH - ab.Dy()) / 2
		yb += (maxH - bb.Dy()) / 2
	case Bottom:
		ya += maxH - ab.Dy()
		yb += maxH - bb.Dy()
	}

	dst := imaging.New(width, height, opts.background())
	dst = imaging.Paste(dst, a, image.Pt(mp, ya))
	dst = imaging.Paste(dst, b, image.Pt(ab.Dx()+3*opts.Margin, yb))
	return dst, nil
}

// ConcatVertical places a above b.
func ConcatVertical(a, b image.Image, opts Options) (*image.NRGBA, error) {
	if err := check(a, b, opts, false); err != nil {
		return nil, err
	}
	if opts.Resize {
		a, b = matchWidths(a, b, opts.ResizeMode)
	}

	ab, bb := a.Bounds(), b.Bounds()
	mp := opts.Margin + opts.Padding
	maxW := max(ab.Dx(), bb.Dx())
	width := maxW + 2*mp
	height := ab.Dy() + bb.Dy() + 2*opts.Padding + 4*opts.Margin

	xa, xb := mp, mp
	switch opts.Align {
	case Center:
		xa += (maxW - ab.Dx()) / 2
		xb += (maxW - bb.Dx()) / 2
	case Right:
		xa = width - ab.Dx() - mp
		xb = width - bb.Dx() - mp
	}

	dst := imaging.New(width, height, opts.background())
	dst = imaging.Paste(dst, a, image.Pt(xa, mp))
	dst = imaging.Paste(dst, b, image.Pt(xb, ab.Dy()+3*opts.Margin))
	return dst, nil
}

func check(a, b image.Image, opts Options, horizontal bool) error {
	if a == nil || b == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidInput)
	}
	if a.Bounds().Empty() || b.Bounds().Empty() {
		return fmt.Errorf("%w: empty image", ErrInvalidInput)
	}
	return opts.validate(horizontal)
}
