package paragraph

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/citador/citador/atlas"
	"github.com/citador/citador/internal/cache"
)

type scaleKey struct {
	bm   *atlas.Bitmap
	w, h int
}

// ScaleCache keeps resized atlas bitmaps across renders. A nil *ScaleCache
// is valid and resizes on every use.
//
// ScaleCache is safe for concurrent use.
type ScaleCache struct {
	c *cache.Cache[scaleKey, *image.NRGBA]
}

// NewScaleCache returns a cache holding at most capacity bitmaps.
func NewScaleCache(capacity int) *ScaleCache {
	return &ScaleCache{c: cache.New[scaleKey, *image.NRGBA](capacity)}
}

// Len returns the number of cached bitmaps.
func (s *ScaleCache) Len() int {
	if s == nil {
		return 0
	}
	return s.c.Len()
}

// scaled returns bm resized to w×h. The result is shared and read-only.
func (s *ScaleCache) scaled(bm *atlas.Bitmap, w, h int) *image.NRGBA {
	if s == nil {
		return scaleBitmap(bm, w, h)
	}
	return s.c.GetOrCreate(scaleKey{bm, w, h}, func() *image.NRGBA {
		return scaleBitmap(bm, w, h)
	})
}

// scaleBitmap resizes bm to w×h with a Catmull-Rom filter.
func scaleBitmap(bm *atlas.Bitmap, w, h int) *image.NRGBA {
	src := bm.Image()
	if src.Bounds().Dx() == w && src.Bounds().Dy() == h {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
