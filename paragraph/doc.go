// Package paragraph renders a block of text that mixes script and emoji
// into an image.
//
// Rendering runs in four stages:
//
//   - Segment wraps the text and splits each line into runs: plain text,
//     emoji sequences and line breaks
//   - Measure sizes every run, taking emoji bitmaps from an atlas.Store and
//     falling back to a colour font for sequences the atlas lacks
//   - ComputeLayout derives the canvas size and line height
//   - Composite draws the runs onto a Canvas in one pass
//
// Render chains the stages:
//
//	img, err := paragraph.Render("Olá 👋🏽", paragraph.Style{
//	    Font:       regular.Face(109),
//	    Emoji:      noto.Face(109),
//	    Atlas:      store,
//	    Color:      color.White,
//	    Background: color.Black,
//	    WrapWidth:  30,
//	    Padding:    10,
//	    Slack:      paragraph.DefaultSlack,
//	})
//
// The same text and style always produce the same pixels.
package paragraph
