package emoji

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrInvalidKey is returned by ParseKey for a malformed code-point key.
var ErrInvalidKey = errors.New("emoji: invalid code-point key")

// Key returns the canonical code-point key of an emoji sequence: lowercase
// hexadecimal code points joined by hyphens, e.g. "1f44b-1f3fd".
//
// A trailing U+FE0F is left out unless the sequence contains a joiner.
// Selectors inside the sequence are kept.
func Key(runes []rune) string {
	if n := len(runes); n > 0 && runes[n-1] == EmojiSelector && !slices.Contains(runes, ZWJ) {
		runes = runes[:n-1]
	}
	return RawKey(runes)
}

// RawKey returns the key of runes exactly as spelled, selectors included.
func RawKey(runes []rune) string {
	return formatKey(runes, func(rune) bool { return true })
}

// LookupKeys returns the keys to try, in order, when looking up runes in an
// atlas: the exact spelling, the canonical key, then the spelling without
// any U+FE0F. Duplicates are left out.
func LookupKeys(runes []rune) []string {
	bare := formatKey(runes, func(r rune) bool { return r != EmojiSelector })
	keys := []string{RawKey(runes)}
	for _, k := range []string{Key(runes), bare} {
		if !slices.Contains(keys, k) {
			keys = append(keys, k)
		}
	}
	return keys
}

func formatKey(runes []rune, keep func(rune) bool) string {
	var b strings.Builder
	for _, r := range runes {
		if !keep(r) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('-')
		}
		b.WriteString(strconv.FormatInt(int64(r), 16))
	}
	return b.String()
}

// ParseKey converts a code-point key such as "1f468-200d-1f469" back into
// its runes.
func ParseKey(key string) ([]rune, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidKey)
	}

	parts := strings.Split(key, "-")
	runes := make([]rune, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(p, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidKey, key, err)
		}
		r := rune(v)
		if !utf8.ValidRune(r) {
			return nil, fmt.Errorf("%w %q: %#x is not a code point", ErrInvalidKey, key, v)
		}
		runes = append(runes, r)
	}
	return runes, nil
}
