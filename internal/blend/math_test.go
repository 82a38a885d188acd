package blend

import "testing"

func TestDiv255(t *testing.T) {
	for x := 0; x <= 255*255; x++ {
		if got, want := int(div255(uint16(x))), x/255; got != want {
			t.Fatalf("div255(%d) = %d, want %d", x, got, want)
		}
	}
}

func TestMulDiv255(t *testing.T) {
	tests := []struct {
		a, b byte
		want byte
	}{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{128, 255, 128},
		{128, 128, 64},
		{100, 200, 78},
	}
	for _, tt := range tests {
		if got := mulDiv255(tt.a, tt.b); got != tt.want {
			t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLerp255Endpoints(t *testing.T) {
	for v := 0; v < 256; v++ {
		for w := 0; w < 256; w += 17 {
			if got := lerp255(byte(w), byte(v), 255); got != byte(v) {
				t.Fatalf("lerp255(%d, %d, 255) = %d, want src", w, v, got)
			}
			if got := lerp255(byte(w), byte(v), 0); got != byte(w) {
				t.Fatalf("lerp255(%d, %d, 0) = %d, want dst", w, v, got)
			}
		}
	}
}
