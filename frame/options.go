package frame

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidInput is returned for nil images, negative spacing and an
// alignment that does not apply to the axis.
var ErrInvalidInput = errors.New("frame: invalid input")

// Align positions the smaller image across the concatenation axis.
type Align uint8

const (
	// Center is valid on both axes and is the default.
	Center Align = iota

	// Top and Bottom apply to ConcatHorizontal.
	Top
	Bottom

	// Left and Right apply to ConcatVertical.
	Left
	Right
)

// String returns the alignment name.
func (a Align) String() string {
	switch a {
	case Center:
		return "center"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Align(%d)", a)
	}
}

// ResizeMode chooses which image is scaled when Options.Resize is set.
type ResizeMode uint8

const (
	// ShrinkLarger scales the larger image down to the smaller one.
	ShrinkLarger ResizeMode = iota

	// GrowSmaller scales the smaller image up to the larger one.
	GrowSmaller
)

// Options configures a concatenation. The zero value centres both images
// with no spacing on a black background.
type Options struct {
	Margin  int
	Padding int
	Align   Align

	// Background fills the canvas. Nil means opaque black.
	Background color.Color

	// Resize scales one image so both have the same size across the
	// concatenation axis.
	Resize     bool
	ResizeMode ResizeMode
}

func (o Options) background() color.Color {
	if o.Background == nil {
		return color.Black
	}
	return o.Background
}

func (o Options) validate(horizontal bool) error {
	if o.Margin < 0 || o.Padding < 0 {
		return fmt.Errorf("%w: margin %d, padding %d", ErrInvalidInput, o.Margin, o.Padding)
	}
	switch o.Align {
	case Center:
		return nil
	case Top, Bottom:
		if horizontal {
			return nil
		}
	case Left, Right:
		if !horizontal {
			return nil
		}
	}
	return fmt.Errorf("%w: alignment %v", ErrInvalidInput, o.Align)
}
