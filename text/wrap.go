package text

import (
	"strings"
	"unicode"

	"github.com/go-text/typesetting/segmenter"
)

// chunkKind classifies a piece of text for wrapping.
type chunkKind uint8

const (
	chunkWord chunkKind = iota
	chunkSpace
	chunkNewline
)

// chunk is a maximal run of graphemes of one kind. Its width is the number of
// graphemes; newlines have no width.
type chunk struct {
	kind      chunkKind
	graphemes []string
}

func (c chunk) width() int {
	if c.kind == chunkNewline {
		return 0
	}
	return len(c.graphemes)
}

func (c chunk) String() string {
	return strings.Join(c.graphemes, "")
}

// Wrap breaks s into lines of at most width visible characters. A visible
// character is a grapheme cluster, so a ZWJ emoji sequence counts once.
//
// Lines break between words. A word longer than width is split across lines.
// Whitespace at a break is dropped. Explicit newlines stay inside the line
// they occur in and restart the column count. A width below 1 is treated
// as 1.
func Wrap(s string, width int) []string {
	if width < 1 {
		width = 1
	}

	chunks := splitChunks(s)
	var lines []string

	for len(chunks) > 0 {
		if len(lines) > 0 && chunks[0].kind == chunkSpace {
			chunks = chunks[1:]
			continue
		}

		var line []chunk
		col := 0
		for len(chunks) > 0 {
			c := chunks[0]
			if c.kind == chunkNewline {
				line = append(line, c)
				col = 0
				chunks = chunks[1:]
				continue
			}
			if col+c.width() > width {
				break
			}
			line = append(line, c)
			col += c.width()
			chunks = chunks[1:]
		}

		if len(chunks) > 0 && chunks[0].width() > width {
			n := width - col
			if n > 0 || len(line) == 0 {
				n = max(n, 1)
				c := chunks[0]
				line = append(line, chunk{kind: c.kind, graphemes: c.graphemes[:n]})
				chunks[0] = chunk{kind: c.kind, graphemes: c.graphemes[n:]}
			}
		}

		if k := len(line); k > 0 && line[k-1].kind == chunkSpace {
			line = line[:k-1]
		}
		if len(line) == 0 {
			continue
		}

		var b strings.Builder
		for _, c := range line {
			b.WriteString(c.String())
		}
		lines = append(lines, b.String())
	}

	return lines
}

// splitChunks groups the grapheme clusters of s into words, whitespace runs
// and single newlines.
func splitChunks(s string) []chunk {
	var seg segmenter.Segmenter
	seg.Init([]rune(s))
	iter := seg.GraphemeIterator()

	var chunks []chunk
	for iter.Next() {
		g := string(iter.Grapheme().Text)

		kind := chunkWord
		switch {
		case strings.ContainsRune(g, '\n'):
			kind = chunkNewline
		case isSpaceGrapheme(g):
			kind = chunkSpace
		}

		if n := len(chunks); n > 0 && kind != chunkNewline && chunks[n-1].kind == kind {
			chunks[n-1].graphemes = append(chunks[n-1].graphemes, g)
			continue
		}
		chunks = append(chunks, chunk{kind: kind, graphemes: []string{g}})
	}
	return chunks
}

func isSpaceGrapheme(g string) bool {
	for _, r := range g {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
