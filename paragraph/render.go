package paragraph

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/citador/citador/atlas"
	"github.com/citador/citador/internal/logging"
	"github.com/citador/citador/text"
	"github.com/citador/citador/text/emoji"
)

// Style holds everything Render needs besides the text.
type Style struct {
	// Font draws script text. Its size is the font size.
	Font text.Face

	// Emoji draws sequences the atlas lacks. Its size is also the target
	// size of atlas bitmaps.
	Emoji *text.ColorFace

	// Atlas supplies emoji bitmaps. It may be nil.
	Atlas *atlas.Store

	// Matcher finds the atlas sequences in text. When nil, Render builds
	// one from Atlas on every call.
	Matcher *emoji.Matcher

	// Cache keeps resized atlas bitmaps between renders. It may be nil.
	Cache *ScaleCache

	Color      color.Color
	Background color.Color

	// WrapWidth is the line length in visible characters.
	WrapWidth int

	// Padding surrounds the text block on every side, in pixels.
	Padding int

	// LineSpacing is added to the tallest run to get the line height.
	LineSpacing int

	// Slack widens the canvas by this fraction of the widest line.
	Slack float64
}

func (st Style) validate() error {
	switch {
	case st.Font == nil:
		return fmt.Errorf("%w: nil font", ErrInvalidInput)
	case st.Emoji == nil:
		return fmt.Errorf("%w: nil emoji font", ErrInvalidInput)
	case st.Font.Size() <= 0:
		return fmt.Errorf("%w: font size %v", ErrInvalidInput, st.Font.Size())
	case st.Emoji.Size() <= 0:
		return fmt.Errorf("%w: emoji size %v", ErrInvalidInput, st.Emoji.Size())
	case st.Color == nil || st.Background == nil:
		return fmt.Errorf("%w: nil colour", ErrInvalidInput)
	case st.WrapWidth <= 0:
		return fmt.Errorf("%w: wrap width %d", ErrInvalidInput, st.WrapWidth)
	case st.Padding <= 0:
		return fmt.Errorf("%w: padding %d", ErrInvalidInput, st.Padding)
	case st.LineSpacing < 0:
		return fmt.Errorf("%w: line spacing %d", ErrInvalidInput, st.LineSpacing)
	case st.Slack < 0:
		return fmt.Errorf("%w: slack %v", ErrInvalidInput, st.Slack)
	}
	return nil
}

// Render draws s with st and returns the image.
//
// The text is normalized to NFC and trimmed first; text that is empty
// after trimming is an error. Emoji missing from the atlas never fail the
// render: they are drawn with the colour font, or as a box when that font
// lacks them too.
func Render(s string, st Style) (*image.RGBA, error) {
	if err := st.validate(); err != nil {
		return nil, err
	}
	s = strings.TrimSpace(norm.NFC.String(s))
	if s == "" {
		return nil, fmt.Errorf("%w: empty text", ErrInvalidInput)
	}

	m := st.Matcher
	if m == nil {
		m = NewMatcher(st.Atlas)
	}

	measured := Measure(Segment(s, st.WrapWidth, m), st)
	l := ComputeLayout(measured, st)

	c := NewCanvas(l.Width, l.Height, st.Background)
	if err := Composite(c, measured, l, st); err != nil {
		return nil, err
	}

	logging.Logger().Debug("paragraph rendered",
		"width", l.Width, "height", l.Height,
		"lines", measured.Lines(), "runs", len(measured.Runs))
	return c.Image(), nil
}
