package text

import (
	"math"
	"testing"
)

func TestFaceMetrics(t *testing.T) {
	face := regularSource(t).Face(48)
	m := face.Metrics()

	if m.Ascent <= 0 {
		t.Errorf("Ascent = %v, want > 0", m.Ascent)
	}
	if m.Descent <= 0 {
		t.Errorf("Descent = %v, want > 0", m.Descent)
	}
	if m.LineHeight() < m.Ascent+m.Descent {
		t.Errorf("LineHeight() = %v, want >= ascent+descent", m.LineHeight())
	}
	if got, want := m.BoxHeight(), int(math.Ceil(m.Ascent+m.Descent)); got != want {
		t.Errorf("BoxHeight() = %d, want %d", got, want)
	}
}

func TestFaceLineGapNeverNegative(t *testing.T) {
	source := regularSource(t)
	for _, h := range []Hinting{HintingNone, HintingVertical, HintingFull} {
		for _, size := range []float64{9, 12, 13, 20, 40, 48, 109} {
			m := source.Face(size, WithHinting(h)).Metrics()
			if m.LineGap < 0 {
				t.Errorf("Face(%v, %v).Metrics().LineGap = %v, want >= 0", size, h, m.LineGap)
			}
			if m.LineHeight() < m.Ascent+m.Descent {
				t.Errorf("Face(%v, %v): LineHeight() = %v, want >= %v", size, h, m.LineHeight(), m.Ascent+m.Descent)
			}
		}
	}
}

func TestFaceMetricsScale(t *testing.T) {
	source := regularSource(t)
	small := source.Face(12, WithHinting(HintingNone)).Metrics()
	large := source.Face(48, WithHinting(HintingNone)).Metrics()

	if large.Ascent <= small.Ascent*3 {
		t.Errorf("ascent at 48 (%v) should be about 4x ascent at 12 (%v)", large.Ascent, small.Ascent)
	}
}

func TestFaceAdvance(t *testing.T) {
	face := regularSource(t).Face(32)

	tests := []string{"A", "Hello", "Hello, World!", "naïve"}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			sum := 0.0
			for _, r := range s {
				sum += face.RuneAdvance(r)
			}
			if got := face.Advance(s); got != sum {
				t.Errorf("Advance(%q) = %v, want sum of rune advances %v", s, got, sum)
			}
			if sum <= 0 {
				t.Errorf("Advance(%q) = %v, want > 0", s, sum)
			}
		})
	}

	if got := face.Advance(""); got != 0 {
		t.Errorf("Advance(\"\") = %v, want 0", got)
	}
}

func TestFaceAdvanceGrowsWithText(t *testing.T) {
	face := regularSource(t).Face(24)
	if face.Advance("ab") <= face.Advance("a") {
		t.Error("longer text should be wider")
	}
}

func TestFaceHasGlyph(t *testing.T) {
	face := regularSource(t).Face(16)

	tests := []struct {
		r    rune
		want bool
	}{
		{'A', true},
		{'z', true},
		{'é', true},
		{0x1F600, false},
	}
	for _, tt := range tests {
		if got := face.HasGlyph(tt.r); got != tt.want {
			t.Errorf("HasGlyph(%U) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestFaceAccessors(t *testing.T) {
	source := regularSource(t)
	face := source.Face(20, WithHinting(HintingVertical))

	if face.Source() != source {
		t.Error("Source() does not return the creating FontSource")
	}
	if face.Size() != 20 {
		t.Errorf("Size() = %v, want 20", face.Size())
	}
	if face.Hinting() != HintingVertical {
		t.Errorf("Hinting() = %v, want Vertical", face.Hinting())
	}
	if got := source.Face(20).Hinting(); got != HintingFull {
		t.Errorf("default Hinting() = %v, want Full", got)
	}
}

func TestHintingString(t *testing.T) {
	tests := []struct {
		h    Hinting
		want string
	}{
		{HintingNone, "None"},
		{HintingVertical, "Vertical"},
		{HintingFull, "Full"},
		{Hinting(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.h.String(); got != tt.want {
			t.Errorf("Hinting(%d).String() = %q, want %q", tt.h, got, tt.want)
		}
	}
}
