package paragraph

import (
	"fmt"
	"image"
	"math"

	"github.com/citador/citador/internal/blend"
	"github.com/citador/citador/text"
)

// Composite draws the runs of m onto c, starting at the padding corner.
func Composite(c *Canvas, m *Measurement, l Layout, st Style) error {
	d, err := text.NewDrawer(st.Font)
	if err != nil {
		return fmt.Errorf("paragraph: prepare text face: %w", err)
	}
	defer func() { _ = d.Close() }()

	dst := c.Image()
	textAscent := st.Font.Metrics().Ascent
	emojiAscent := st.Emoji.Ascent()

	x, y := float64(l.Padding), l.Padding
	for _, r := range m.Runs {
		top := float64(y + l.offset(r.Height))

		switch r.Kind {
		case LineBreak:
			y += l.LineHeight
			x = float64(l.Padding)
			continue

		case Text:
			d.DrawString(dst, r.Text, x, top+textAscent, st.Color)

		case Emoji:
			if r.Fallback {
				st.Emoji.Draw(dst, []rune(r.Text), x, top+emojiAscent, st.Color)
				break
			}
			src := st.Cache.scaled(r.Bitmap, int(r.Width), r.Height)
			at := image.Pt(int(math.Round(x)), int(top))
			blend.Composite(dst, src.Bounds().Add(at), src, image.Point{})

		default:
			panic(fmt.Sprintf("paragraph: unknown run kind %v", r.Kind))
		}
		x += r.Width
	}
	return nil
}
