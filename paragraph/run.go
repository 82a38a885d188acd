package paragraph

import (
	"fmt"

	"github.com/citador/citador/atlas"
)

// Kind identifies what a Run holds.
type Kind uint8

const (
	// Text is a span of script characters drawn with the text face.
	Text Kind = iota

	// Emoji is a single emoji sequence.
	Emoji

	// LineBreak ends the current line.
	LineBreak
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Text:
		return "Text"
	case Emoji:
		return "Emoji"
	case LineBreak:
		return "LineBreak"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Run is a maximal span of one kind within a line.
type Run struct {
	Kind Kind

	// Text holds the characters of a Text or Emoji run.
	Text string

	// Key is the canonical code-point key of an Emoji run.
	Key string

	// AtlasKey is the atlas entry the matcher recognized the run as, empty
	// when the run was found by structure alone.
	AtlasKey string

	// Explicit marks a LineBreak that came from a newline in the input
	// rather than from wrapping.
	Explicit bool

	// The fields below are filled in by Measure.

	// Width is the horizontal advance in pixels.
	Width float64

	// Height is the height of the run's box in pixels.
	Height int

	// Bitmap is the atlas image of an Emoji run, nil when the atlas has no
	// entry for it.
	Bitmap *atlas.Bitmap

	// Fallback marks an Emoji run drawn with the colour font.
	Fallback bool
}

// String returns a short description used in logs and test failures.
func (r Run) String() string {
	switch r.Kind {
	case Emoji:
		return fmt.Sprintf("Emoji(%s)", r.Key)
	case LineBreak:
		if r.Explicit {
			return "LineBreak(explicit)"
		}
		return "LineBreak"
	default:
		return fmt.Sprintf("%s(%q)", r.Kind, r.Text)
	}
}
