package frame

import (
	"image"

	"github.com/disintegration/imaging"
)

// matchHeights scales a or b so both have the same height, keeping the
// aspect ratio of the scaled image.
func matchHeights(a, b image.Image, mode ResizeMode) (image.Image, image.Image) {
	ha, hb := a.Bounds().Dy(), b.Bounds().Dy()
	if ha == hb {
		return a, b
	}
	if (ha > hb) == (mode == ShrinkLarger) {
		return scaleToHeight(a, hb), b
	}
	return a, scaleToHeight(b, ha)
}

// matchWidths is matchHeights for the horizontal axis.
func matchWidths(a, b image.Image, mode ResizeMode) (image.Image, image.Image) {
	wa, wb := a.Bounds().Dx(), b.Bounds().Dx()
	if wa == wb {
		return a, b
	}
	if (wa > wb) == (mode == ShrinkLarger) {
		return scaleToWidth(a, wb), b
	}
	return a, scaleToWidth(b, wa)
}

func scaleToHeight(img image.Image, h int) image.Image {
	r := img.Bounds()
	w := max(1, r.Dx()*h/r.Dy())
	return imaging.Resize(img, w, h, imaging.CatmullRom)
}

func scaleToWidth(img image.Image, w int) image.Image {
	r := img.Bounds()
	h := max(1, r.Dy()*w/r.Dx())
	return imaging.Resize(img, w, h, imaging.CatmullRom)
}
