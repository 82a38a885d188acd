package atlas

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // PNG payloads
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // WebP payloads

	"github.com/citador/citador/internal/logging"
	"github.com/citador/citador/internal/parallel"
)

// Bitmap is a decoded atlas image in straight (non-premultiplied) RGBA.
//
// Bitmaps returned by a Store are shared between callers and must not be
// modified; use Clone to obtain a private copy.
type Bitmap struct {
	img *image.NRGBA
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int {
	return b.img.Rect.Dx()
}

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int {
	return b.img.Rect.Dy()
}

// Image returns the underlying pixels. The image is shared and read-only.
func (b *Bitmap) Image() *image.NRGBA {
	return b.img
}

// Clone returns a deep copy that the caller may modify.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{img: imaging.Clone(b.img)}
}

// parallelDecodeMin is the entry count from which New decodes on a worker
// pool.
const parallelDecodeMin = 64

// Store is an immutable mapping from code-point key to bitmap.
// Store is safe for concurrent use.
type Store struct {
	bitmaps map[string]*Bitmap
	keys    []string
}

// New decodes every entry into a bitmap and returns the finished store.
// A payload that is not a decodable image, an empty key or a duplicated key
// is a *FormatError; no partial store is ever returned.
func New(entries []Entry) (*Store, error) {
	s := &Store{
		bitmaps: make(map[string]*Bitmap, len(entries)),
		keys:    make([]string, 0, len(entries)),
	}

	for _, e := range entries {
		if e.Key == "" {
			return nil, &FormatError{Offset: -1, Reason: "empty entry name"}
		}
		if _, dup := s.bitmaps[e.Key]; dup {
			return nil, &FormatError{Offset: -1, Key: e.Key, Reason: "duplicate entry"}
		}
		s.bitmaps[e.Key] = nil
		s.keys = append(s.keys, e.Key)
	}

	imgs := make([]*image.NRGBA, len(entries))
	errs := make([]error, len(entries))
	decode := func(i int) {
		img, _, err := image.Decode(bytes.NewReader(entries[i].Data))
		if err != nil {
			errs[i] = err
			return
		}
		imgs[i] = imaging.Clone(img)
	}

	if len(entries) < parallelDecodeMin {
		for i := range entries {
			decode(i)
		}
	} else {
		pool := parallel.NewPool(0)
		pool.Run(len(entries), decode)
		pool.Close()
	}

	for i, e := range entries {
		if errs[i] != nil {
			return nil, &FormatError{Offset: -1, Key: e.Key, Reason: "payload is not an image", Err: errs[i]}
		}
		s.bitmaps[e.Key] = &Bitmap{img: imgs[i]}
	}

	sort.Strings(s.keys)
	return s, nil
}

// Read decodes an atlas container from r into a Store.
func Read(r io.Reader) (*Store, error) {
	entries, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return New(entries)
}

// Load reads the atlas container at path.
func Load(path string) (*Store, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("atlas: open container: %w", err)
	}
	defer func() { _ = f.Close() }()

	s, err := Read(f)
	if err != nil {
		return nil, err
	}

	logging.Logger().Info("emoji atlas loaded", "path", path, "entries", s.Len())
	return s, nil
}

// Lookup returns the bitmap stored under key.
func (s *Store) Lookup(key string) (*Bitmap, bool) {
	if s == nil {
		return nil, false
	}
	bm, ok := s.bitmaps[key]
	return bm, ok
}

// Len returns the number of bitmaps in the store.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Keys returns all keys in ascending order. The slice is a copy.
func (s *Store) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}
