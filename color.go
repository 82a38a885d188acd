package citador

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
)

// ErrInvalidColor is returned by ParseHex for a malformed colour.
var ErrInvalidColor = errors.New("citador: invalid hex colour")

// ParseHex parses a colour in "RGB", "RGBA", "RRGGBB" or "RRGGBBAA" form,
// with or without a leading '#'.
func ParseHex(s string) (color.NRGBA, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var digits int
	switch len(hex) {
	case 3, 4:
		digits = 1
	case 6, 8:
		digits = 2
	default:
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	c := [4]uint8{3: 255}
	for i := 0; i*digits < len(hex); i++ {
		v, err := strconv.ParseUint(hex[i*digits:(i+1)*digits], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		if digits == 1 {
			v *= 17
		}
		c[i] = uint8(v)
	}
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}, nil
}
