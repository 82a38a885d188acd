package citador

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/citador/citador/frame"
)

// Scales of the quote blocks relative to the caption.
const (
	authorScale   = 0.5
	fakeMarkScale = 0.4
	contextScale  = 0.7
)

// Quote is the content of a quote image.
type Quote struct {
	// Text is the quoted sentence, without quotation marks.
	Text string

	// Author is printed under the caption, right aligned. See FormatAuthor.
	Author string

	// Context is an optional note printed under the author, left aligned.
	Context string

	// Photo is an optional picture placed to the right of the text, in
	// grayscale.
	Photo image.Image

	// Fake stamps the fake-quote notice under the author.
	Fake bool
}

// RenderQuote draws q.
//
// The caption is set in italics between curly quotes. The author follows
// at half size, then the fake-quote notice and the context. A photo is
// converted to grayscale and joined on the right; when it is shorter than
// the text block the text block is scaled down to its height.
func (r *Renderer) RenderQuote(q Quote) (*image.NRGBA, error) {
	if strings.TrimSpace(q.Text) == "" {
		return nil, fmt.Errorf("%w: empty text", ErrInvalidQuote)
	}

	caption, err := r.render("“"+strings.TrimSpace(q.Text)+"”", r.cfg.Italic, 1, QuotePadding)
	if err != nil {
		return nil, fmt.Errorf("citador: caption: %w", err)
	}
	block := imaging.Clone(caption)

	if strings.TrimSpace(q.Author) != "" {
		if block, err = r.appendBlock(block, q.Author, authorScale, frame.Right); err != nil {
			return nil, fmt.Errorf("citador: author: %w", err)
		}
	}
	if q.Fake && r.cfg.FakeMark != "" {
		if block, err = r.appendBlock(block, r.cfg.FakeMark, fakeMarkScale, frame.Right); err != nil {
			return nil, fmt.Errorf("citador: fake mark: %w", err)
		}
	}
	if strings.TrimSpace(q.Context) != "" {
		if block, err = r.appendBlock(block, q.Context, contextScale, frame.Left); err != nil {
			return nil, fmt.Errorf("citador: context: %w", err)
		}
	}

	if q.Photo == nil {
		return block, nil
	}

	photo := imaging.Grayscale(q.Photo)
	opts := r.frameOptions(frame.Center)
	opts.Resize = photo.Bounds().Dy() < block.Bounds().Dy()
	out, err := frame.ConcatHorizontal(block, photo, opts)
	if err != nil {
		return nil, fmt.Errorf("citador: photo: %w", err)
	}
	return out, nil
}

// appendBlock renders s in the regular font at scale and joins it under
// block.
func (r *Renderer) appendBlock(block *image.NRGBA, s string, scale float64, align frame.Align) (*image.NRGBA, error) {
	img, err := r.render(s, r.cfg.Regular, scale, QuotePadding)
	if err != nil {
		return nil, err
	}
	return frame.ConcatVertical(block, img, r.frameOptions(align))
}

// FormatAuthor formats a full name as "LAST, First": the last word in
// upper case, then the words before it. A single word is returned as is.
//
//	FormatAuthor("Ariano Vilar Suassuna") == "SUASSUNA, Ariano Vilar"
func FormatAuthor(name string) string {
	words := strings.Fields(name)
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	}
	last := len(words) - 1
	return cases.Upper(language.Und).String(words[last]) + ", " + strings.Join(words[:last], " ")
}
