package text

import (
	"slices"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"empty", "", 10, nil},
		{"fits", "hello", 10, []string{"hello"}},
		{"two words", "hello world", 5, []string{"hello", "world"}},
		{"space at break dropped", "the quick brown fox", 10, []string{"the quick", "brown fox"}},
		{"long word split", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"long word fills line", "ab cdefgh", 4, []string{"ab c", "defg", "h"}},
		{"run of spaces", "a   b", 3, []string{"a", "b"}},
		{"zero width", "ab", 0, []string{"a", "b"}},
		{"explicit newline kept", "line1\nline2", 30, []string{"line1\nline2"}},
		{"newline restarts column", "aaaa\nbbbb", 4, []string{"aaaa\nbbbb"}},
		{"newline then wrap", "aa\nbb cc", 5, []string{"aa\nbb cc"}},
		{"graphemes not runes", "ééé x", 5, []string{"ééé x"}},
		{
			"zwj sequence counts once",
			"\U0001F468\u200d\U0001F469\u200d\U0001F467 ab",
			4,
			[]string{"\U0001F468\u200d\U0001F469\u200d\U0001F467 ab"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.width)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Wrap(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrapLinesRespectWidth(t *testing.T) {
	text := "Citations are rendered on a black card with the author below and an optional photo"
	for width := 1; width <= 40; width++ {
		for _, line := range Wrap(text, width) {
			if n := len([]rune(line)); n > width {
				t.Fatalf("width %d: line %q has %d characters", width, line, n)
			}
			if line == "" || line[0] == ' ' || line[len(line)-1] == ' ' {
				t.Fatalf("width %d: line %q has whitespace at a break", width, line)
			}
		}
	}
}
