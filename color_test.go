package citador

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#fff", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"000", color.NRGBA{R: 0, G: 0, B: 0, A: 255}},
		{"#f008", color.NRGBA{R: 255, G: 0, B: 0, A: 136}},
		{"#1a2B3c", color.NRGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 255}},
		{"1a2b3c80", color.NRGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0x80}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHexErrors(t *testing.T) {
	for _, in := range []string{"", "#", "ff", "#12345", "#ggg", "12345z", "+1+2+3"} {
		if _, err := ParseHex(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
}
