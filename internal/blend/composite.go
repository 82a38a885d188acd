// Package blend composites straight-alpha bitmaps onto RGBA canvases.
//
// Sources are non-premultiplied (image.NRGBA) and every channel follows
//
//	dst = src*a + dst*(1-a)
//
// with a the source alpha. On a premultiplied destination this is exactly
// Porter-Duff source-over, so the canvas stays a valid image.RGBA.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
package blend

import (
	"image"
	"image/color"
)

// Over blends one straight-alpha source pixel over a premultiplied
// destination pixel.
func Over(dst color.RGBA, src color.NRGBA) color.RGBA {
	switch src.A {
	case 0:
		return dst
	case 255:
		return color.RGBA{R: src.R, G: src.G, B: src.B, A: 255}
	}
	return color.RGBA{
		R: lerp255(dst.R, src.R, src.A),
		G: lerp255(dst.G, src.G, src.A),
		B: lerp255(dst.B, src.B, src.A),
		A: src.A + mulDiv255(dst.A, 255-src.A),
	}
}

// Composite blends src over dst. The source pixel at sp lands on r.Min;
// r is clipped to both images.
func Composite(dst *image.RGBA, r image.Rectangle, src *image.NRGBA, sp image.Point) {
	r, sp = clip(dst.Bounds(), r, src.Bounds(), sp)
	if r.Empty() {
		return
	}

	w := r.Dx()
	for y := 0; y < r.Dy(); y++ {
		di := dst.PixOffset(r.Min.X, r.Min.Y+y)
		si := src.PixOffset(sp.X, sp.Y+y)
		drow := dst.Pix[di : di+4*w : di+4*w]
		srow := src.Pix[si : si+4*w : si+4*w]

		for x := 0; x < len(drow); x += 4 {
			out := Over(
				color.RGBA{R: drow[x], G: drow[x+1], B: drow[x+2], A: drow[x+3]},
				color.NRGBA{R: srow[x], G: srow[x+1], B: srow[x+2], A: srow[x+3]},
			)
			drow[x], drow[x+1], drow[x+2], drow[x+3] = out.R, out.G, out.B, out.A
		}
	}
}

// clip shrinks r to the parts covered by both dst and src, moving sp along.
func clip(dst, r, src image.Rectangle, sp image.Point) (image.Rectangle, image.Point) {
	orig := r.Min
	r = r.Intersect(dst)
	r = r.Intersect(src.Add(orig.Sub(sp)))
	return r, sp.Add(r.Min.Sub(orig))
}
