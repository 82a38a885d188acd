package paragraph

import "math"

// DefaultSlack is the extra width, as a fraction of the widest line, added
// to the canvas so glyph overhang at the line end is not clipped.
const DefaultSlack = 0.05

// Layout is the canvas geometry of a measured paragraph.
type Layout struct {
	Width, Height int

	// LineHeight is the distance between consecutive line tops.
	LineHeight int

	Padding int
}

// ComputeLayout sizes the canvas for m.
//
// The width is ceil(maxWidth + 2·padding + slack·maxWidth) and the height
// is lineHeight·lines + 2·padding, where lineHeight is the tallest run plus
// the extra line spacing.
func ComputeLayout(m *Measurement, st Style) Layout {
	lineHeight := m.MaxHeight + st.LineSpacing
	pad := float64(st.Padding)
	return Layout{
		Width:      int(math.Ceil(m.MaxWidth + 2*pad + st.Slack*m.MaxWidth)),
		Height:     lineHeight*m.Lines() + 2*st.Padding,
		LineHeight: lineHeight,
		Padding:    st.Padding,
	}
}

// offset returns the vertical offset that centres a run of height h in the
// line.
func (l Layout) offset(h int) int {
	return (l.LineHeight - h) / 2
}
