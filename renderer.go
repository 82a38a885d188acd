package citador

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/disintegration/imaging"

	"github.com/citador/citador/frame"
	"github.com/citador/citador/internal/logging"
	"github.com/citador/citador/paragraph"
	"github.com/citador/citador/text"
	"github.com/citador/citador/text/emoji"
)

// Renderer draws paragraphs and quotes with a fixed configuration.
// It is safe for concurrent use.
type Renderer struct {
	cfg     Config
	matcher *emoji.Matcher
	scaled  *paragraph.ScaleCache
}

// scaleCacheSize bounds the resized emoji bitmaps kept between renders.
const scaleCacheSize = 1024

// New creates a Renderer from DefaultConfig and opts.
func New(opts ...Option) (*Renderer, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Renderer from cfg.
func NewWithConfig(cfg Config) (*Renderer, error) {
	switch {
	case cfg.Regular == nil:
		return nil, fmt.Errorf("%w: regular", ErrMissingFont)
	case cfg.Italic == nil:
		return nil, fmt.Errorf("%w: italic", ErrMissingFont)
	case cfg.Emoji == nil:
		return nil, fmt.Errorf("%w: emoji", ErrMissingFont)
	}

	r := &Renderer{
		cfg:     cfg,
		matcher: paragraph.NewMatcher(cfg.Atlas),
		scaled:  paragraph.NewScaleCache(scaleCacheSize),
	}
	logging.Logger().Debug("renderer ready",
		"font", cfg.Regular.Name(), "size", cfg.FontSize,
		"atlas", cfg.Atlas.Len(), "sequences", r.matcher.Len())
	return r, nil
}

// Config returns the renderer settings.
func (r *Renderer) Config() Config {
	return r.cfg
}

// RenderParagraph draws s in the regular font at full size with the
// configured padding.
func (r *Renderer) RenderParagraph(s string) (*image.RGBA, error) {
	return r.render(s, r.cfg.Regular, 1, r.cfg.Padding)
}

// render draws s with src at scale times the configured sizes. Sizes are
// truncated to whole pixels.
func (r *Renderer) render(s string, src *text.FontSource, scale float64, padding int) (*image.RGBA, error) {
	return paragraph.Render(s, paragraph.Style{
		Font:        src.Face(math.Floor(r.cfg.FontSize * scale)),
		Emoji:       r.cfg.Emoji.Face(math.Floor(r.cfg.emojiSize() * scale)),
		Atlas:       r.cfg.Atlas,
		Matcher:     r.matcher,
		Cache:       r.scaled,
		Color:       r.cfg.Color,
		Background:  r.cfg.Background,
		WrapWidth:   r.cfg.WrapWidth,
		Padding:     padding,
		LineSpacing: r.cfg.LineSpacing,
		Slack:       r.cfg.Slack,
	})
}

// frameOptions returns the join options for the given alignment.
func (r *Renderer) frameOptions(align frame.Align) frame.Options {
	return frame.Options{
		Margin:     r.cfg.Margin,
		Padding:    r.cfg.Padding,
		Align:      align,
		Background: r.cfg.Background,
	}
}

// EncodeJPEG writes img to w as a JPEG at the configured quality.
func (r *Renderer) EncodeJPEG(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(r.cfg.JPEGQuality)); err != nil {
		return fmt.Errorf("citador: encode jpeg: %w", err)
	}
	return nil
}
