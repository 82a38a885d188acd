package paragraph

import (
	"iter"
	"sync/atomic"
	"unicode"

	"github.com/citador/citador/atlas"
	"github.com/citador/citador/internal/logging"
	"github.com/citador/citador/text"
	"github.com/citador/citador/text/emoji"
)

// NewMatcher builds the emoji matcher for the keys of store. Keys that are
// not code-point keys are skipped and logged. A nil store gives an empty
// matcher.
func NewMatcher(store *atlas.Store) *emoji.Matcher {
	m, skipped := emoji.NewMatcherFromKeys(store.Keys())
	for _, k := range skipped {
		logging.Logger().Debug("atlas key is not a code-point sequence", "key", k)
	}
	return m
}

// Segment wraps s at wrapWidth visible characters and returns its runs.
//
// At every position the longest sequence known to m competes with the
// longest well-formed emoji sequence, and the longer one becomes an Emoji
// run. Newlines become explicit LineBreak runs, wrapped lines are separated
// by soft ones, and other control characters are dropped.
//
// The returned sequence can be ranged over once; later iterations yield
// nothing.
func Segment(s string, wrapWidth int, m *emoji.Matcher) iter.Seq[Run] {
	var used atomic.Bool
	return func(yield func(Run) bool) {
		if used.Swap(true) {
			return
		}
		for i, line := range text.Wrap(s, wrapWidth) {
			if i > 0 && !yield(Run{Kind: LineBreak}) {
				return
			}
			if !segmentLine([]rune(line), m, yield) {
				return
			}
		}
	}
}

// segmentLine yields the runs of one wrapped line and reports whether the
// consumer wants more.
func segmentLine(runes []rune, m *emoji.Matcher, yield func(Run) bool) bool {
	var buf []rune
	flush := func() bool {
		if len(buf) == 0 {
			return true
		}
		r := Run{Kind: Text, Text: string(buf)}
		buf = buf[:0]
		return yield(r)
	}

	for i := 0; i < len(runes); {
		r := runes[i]
		if r == '\n' {
			if !flush() || !yield(Run{Kind: LineBreak, Explicit: true}) {
				return false
			}
			i++
			continue
		}

		if n, key := matchEmoji(runes[i:], m); n > 0 {
			seq := runes[i : i+n]
			if !flush() || !yield(Run{Kind: Emoji, Text: string(seq), Key: emoji.Key(seq), AtlasKey: key}) {
				return false
			}
			i += n
			continue
		}

		if !unicode.IsControl(r) {
			buf = append(buf, r)
		}
		i++
	}
	return flush()
}

// matchEmoji returns the length of the emoji sequence at the start of
// runes, or 0, and the atlas key when the matcher supplied the match.
// Joiners, selectors and combining marks that follow the match stay with it.
func matchEmoji(runes []rune, m *emoji.Matcher) (int, string) {
	n, key := m.Match(runes)
	if _, p := emoji.ParseAt(runes); p > n {
		n, key = p, ""
	}
	if n == 0 {
		return 0, ""
	}
	for n < len(runes) && emoji.IsExtender(runes[n]) {
		n++
	}
	return n, key
}
