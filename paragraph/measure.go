package paragraph

import (
	"iter"
	"math"

	"github.com/citador/citador/atlas"
	"github.com/citador/citador/internal/logging"
	"github.com/citador/citador/text"
	"github.com/citador/citador/text/emoji"
)

// Measurement is the sized run list of a paragraph.
type Measurement struct {
	// Runs in input order, with Width, Height, Bitmap and Fallback set.
	Runs []Run

	// LineHeights holds the tallest run of each visual line.
	LineHeights []int

	// MaxWidth is the width of the widest visual line.
	MaxWidth float64

	// MaxHeight is the height of the tallest run.
	MaxHeight int

	// WrappedLines counts the lines produced by wrapping.
	WrappedLines int

	// ExplicitBreaks counts the newlines in the input.
	ExplicitBreaks int
}

// Lines returns the number of visual lines.
func (m *Measurement) Lines() int {
	return m.WrappedLines + m.ExplicitBreaks
}

// Measure sizes runs with the faces and atlas of st.
//
// Emoji found in the atlas are sized so their larger side equals the emoji
// face size. Emoji missing from it are marked Fallback and sized with the
// colour face.
func Measure(runs iter.Seq[Run], st Style) *Measurement {
	m := &Measurement{WrappedLines: 1}
	textHeight := st.Font.Metrics().BoxHeight()
	emojiSize := st.Emoji.Size()

	var lineWidth float64
	lineHeight := 0
	endLine := func() {
		m.MaxWidth = math.Max(m.MaxWidth, lineWidth)
		m.LineHeights = append(m.LineHeights, lineHeight)
		lineWidth, lineHeight = 0, 0
	}

	for r := range runs {
		switch r.Kind {
		case Text:
			r.Width = st.Font.Advance(r.Text)
			r.Height = textHeight
		case Emoji:
			measureEmoji(&r, st.Atlas, st.Emoji, emojiSize)
		case LineBreak:
			if r.Explicit {
				m.ExplicitBreaks++
			} else {
				m.WrappedLines++
			}
			endLine()
		}

		lineWidth += r.Width
		lineHeight = max(lineHeight, r.Height)
		m.MaxHeight = max(m.MaxHeight, r.Height)
		m.Runs = append(m.Runs, r)
	}
	endLine()
	return m
}

func measureEmoji(r *Run, store *atlas.Store, face *text.ColorFace, size float64) {
	runes := []rune(r.Text)
	keys := emoji.LookupKeys(runes)
	if r.AtlasKey != "" {
		keys = append([]string{r.AtlasKey}, keys...)
	}
	for _, key := range keys {
		bm, ok := store.Lookup(key)
		if !ok {
			continue
		}
		w, h := scaledSize(bm.Width(), bm.Height(), size)
		r.Bitmap = bm
		r.Width = float64(w)
		r.Height = h
		return
	}

	logging.Logger().Debug("emoji not in atlas, using colour font", "key", r.Key)
	r.Fallback = true
	r.Width = face.Advance(runes)
	r.Height = face.Height()
}

// scaledSize scales w×h so that the larger side becomes size.
func scaledSize(w, h int, size float64) (int, int) {
	longest := max(w, h)
	if longest == 0 {
		return 0, 0
	}
	scale := size / float64(longest)
	sw := max(1, int(math.Round(float64(w)*scale)))
	sh := max(1, int(math.Round(float64(h)*scale)))
	return sw, sh
}
