// Package emoji classifies emoji code points and groups them into complete
// sequences.
//
// It recognizes:
//
//   - Single emoji (U+1F600 grinning face)
//   - Presentation sequences (U+2764 U+FE0F red heart)
//   - Skin tone modifiers (U+1F44B U+1F3FD waving hand, medium skin)
//   - ZWJ sequences (man, woman, girl joined by U+200D)
//   - Flags from two regional indicators
//   - Keycaps (digit, optional U+FE0F, U+20E3)
//   - Subdivision flags built from tag characters
//
// # Keys
//
// Emoji image sets name each picture after its code points, for example
// "1f468-200d-1f469-200d-1f467". Key and RawKey derive such names from a
// sequence, ParseKey reverses them.
//
// # Matching
//
// ParseAt recognizes sequences by structure alone. A Matcher recognizes the
// sequences of a concrete image set, which may include combinations ParseAt
// does not know about:
//
//	m, _ := emoji.NewMatcherFromKeys(store.Keys())
//	if n, key := m.Match(runes); n > 0 {
//	    // runes[:n] is the sequence stored under key
//	}
//
// Classification follows Unicode Technical Report #51,
// https://www.unicode.org/reports/tr51/.
package emoji
