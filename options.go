package citador

import (
	"image/color"

	"github.com/citador/citador/atlas"
	"github.com/citador/citador/paragraph"
	"github.com/citador/citador/text"
)

// Layout constants of the quote images.
const (
	DefaultFontSize    = 109
	DefaultWrapWidth   = 30
	DefaultPadding     = 10
	DefaultMargin      = 15
	DefaultJPEGQuality = 75

	// QuotePadding surrounds every text block of a quote.
	QuotePadding = 25

	// DefaultFakeMark is stamped under fake quotes.
	DefaultFakeMark = "Esta é uma falsa citação gerada com /fake_quote"
)

// Config holds the settings of a Renderer.
type Config struct {
	Atlas *atlas.Store

	Regular *text.FontSource
	Italic  *text.FontSource
	Emoji   *text.ColorSource

	// FontSize is the caption size in pixels per em. Author, fake mark and
	// context are drawn at fixed fractions of it.
	FontSize float64

	// EmojiSize is the emoji size at full scale. Zero means FontSize.
	EmojiSize float64

	Color      color.Color
	Background color.Color

	WrapWidth   int
	Padding     int
	Margin      int
	LineSpacing int
	Slack       float64

	FakeMark    string
	JPEGQuality int
}

// DefaultConfig returns the settings of the original quote bot, without
// fonts or atlas.
func DefaultConfig() Config {
	return Config{
		FontSize:    DefaultFontSize,
		Color:       color.White,
		Background:  color.Black,
		WrapWidth:   DefaultWrapWidth,
		Padding:     DefaultPadding,
		Margin:      DefaultMargin,
		Slack:       paragraph.DefaultSlack,
		FakeMark:    DefaultFakeMark,
		JPEGQuality: DefaultJPEGQuality,
	}
}

func (c Config) emojiSize() float64 {
	if c.EmojiSize > 0 {
		return c.EmojiSize
	}
	return c.FontSize
}

// Option configures a Renderer.
//
// Example:
//
//	r, err := citador.New(
//	    citador.WithFonts(regular, italic, noto),
//	    citador.WithColors(color.Black, color.White),
//	)
type Option func(*Config)

// WithAtlas sets the emoji atlas. Without one every emoji is drawn with the
// colour font.
func WithAtlas(store *atlas.Store) Option {
	return func(c *Config) {
		c.Atlas = store
	}
}

// WithFonts sets the caption, body and emoji fonts. All three are required.
func WithFonts(regular, italic *text.FontSource, emoji *text.ColorSource) Option {
	return func(c *Config) {
		c.Regular = regular
		c.Italic = italic
		c.Emoji = emoji
	}
}

// WithFontSize sets the caption font size.
func WithFontSize(size float64) Option {
	return func(c *Config) {
		c.FontSize = size
	}
}

// WithEmojiSize sets the full-scale emoji size.
func WithEmojiSize(size float64) Option {
	return func(c *Config) {
		c.EmojiSize = size
	}
}

// WithColors sets the text and background colours.
func WithColors(fg, bg color.Color) Option {
	return func(c *Config) {
		c.Color = fg
		c.Background = bg
	}
}

// WithWrapWidth sets the line length in visible characters.
func WithWrapWidth(n int) Option {
	return func(c *Config) {
		c.WrapWidth = n
	}
}

// WithPadding sets the padding used when joining blocks, and around
// paragraphs rendered with RenderParagraph.
func WithPadding(px int) Option {
	return func(c *Config) {
		c.Padding = px
	}
}

// WithMargin sets the margin around each joined block.
func WithMargin(px int) Option {
	return func(c *Config) {
		c.Margin = px
	}
}

// WithLineSpacing adds px between lines.
func WithLineSpacing(px int) Option {
	return func(c *Config) {
		c.LineSpacing = px
	}
}

// WithSlack sets the extra paragraph width as a fraction of the widest
// line.
func WithSlack(f float64) Option {
	return func(c *Config) {
		c.Slack = f
	}
}

// WithFakeMark sets the notice stamped under fake quotes.
func WithFakeMark(s string) Option {
	return func(c *Config) {
		c.FakeMark = s
	}
}

// WithJPEGQuality sets the quality used by EncodeJPEG, 1 to 100.
func WithJPEGQuality(q int) Option {
	return func(c *Config) {
		c.JPEGQuality = q
	}
}
