package emoji

import "unicode"

// Code points with a fixed role inside emoji sequences.
const (
	ZWJ             rune = 0x200D
	TextSelector    rune = 0xFE0E
	EmojiSelector   rune = 0xFE0F
	EnclosingKeycap rune = 0x20E3
	BlackFlag       rune = 0x1F3F4
	CancelTag       rune = 0xE007F
	regionalA       rune = 0x1F1E6
	regionalZ       rune = 0x1F1FF
	modifierLight   rune = 0x1F3FB
	modifierDark    rune = 0x1F3FF
	tagFirst        rune = 0xE0020
	tagLast         rune = 0xE007E
)

// emojiPresentation holds code points that render as emoji without U+FE0F
// (Emoji_Presentation=Yes), approximated by block where Unicode allocates
// pictographs densely.
var emojiPresentation = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x231A, Hi: 0x231B, Stride: 1},
		{Lo: 0x23E9, Hi: 0x23EC, Stride: 1},
		{Lo: 0x23F0, Hi: 0x23F3, Stride: 3},
		{Lo: 0x25FD, Hi: 0x25FE, Stride: 1},
		{Lo: 0x2614, Hi: 0x2615, Stride: 1},
		{Lo: 0x2648, Hi: 0x2653, Stride: 1},
		{Lo: 0x267F, Hi: 0x2693, Stride: 20},
		{Lo: 0x26A1, Hi: 0x26A1, Stride: 1},
		{Lo: 0x26AA, Hi: 0x26AB, Stride: 1},
		{Lo: 0x26BD, Hi: 0x26BE, Stride: 1},
		{Lo: 0x26C4, Hi: 0x26C5, Stride: 1},
		{Lo: 0x26CE, Hi: 0x26D4, Stride: 6},
		{Lo: 0x26EA, Hi: 0x26EA, Stride: 1},
		{Lo: 0x26F2, Hi: 0x26F3, Stride: 1},
		{Lo: 0x26F5, Hi: 0x26FA, Stride: 5},
		{Lo: 0x26FD, Hi: 0x26FD, Stride: 1},
		{Lo: 0x2705, Hi: 0x2705, Stride: 1},
		{Lo: 0x270A, Hi: 0x270B, Stride: 1},
		{Lo: 0x2728, Hi: 0x2728, Stride: 1},
		{Lo: 0x274C, Hi: 0x274E, Stride: 2},
		{Lo: 0x2753, Hi: 0x2755, Stride: 1},
		{Lo: 0x2757, Hi: 0x2757, Stride: 1},
		{Lo: 0x2795, Hi: 0x2797, Stride: 1},
		{Lo: 0x27B0, Hi: 0x27BF, Stride: 15},
		{Lo: 0x2B1B, Hi: 0x2B1C, Stride: 1},
		{Lo: 0x2B50, Hi: 0x2B55, Stride: 5},
	},
	R32: []unicode.Range32{
		{Lo: 0x1F004, Hi: 0x1F004, Stride: 1},
		{Lo: 0x1F0CF, Hi: 0x1F0CF, Stride: 1},
		{Lo: 0x1F18E, Hi: 0x1F18E, Stride: 1},
		{Lo: 0x1F191, Hi: 0x1F19A, Stride: 1},
		{Lo: 0x1F1E6, Hi: 0x1F1FF, Stride: 1},
		{Lo: 0x1F201, Hi: 0x1F201, Stride: 1},
		{Lo: 0x1F21A, Hi: 0x1F21A, Stride: 1},
		{Lo: 0x1F22F, Hi: 0x1F22F, Stride: 1},
		{Lo: 0x1F232, Hi: 0x1F236, Stride: 1},
		{Lo: 0x1F238, Hi: 0x1F23A, Stride: 1},
		{Lo: 0x1F250, Hi: 0x1F251, Stride: 1},
		{Lo: 0x1F300, Hi: 0x1F64F, Stride: 1},
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1},
		{Lo: 0x1F7E0, Hi: 0x1F7EB, Stride: 1},
		{Lo: 0x1F7F0, Hi: 0x1F7F0, Stride: 1},
		{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1},
		{Lo: 0x1FA70, Hi: 0x1FAFF, Stride: 1},
	},
}

// textPresentation holds code points that are emoji but render as text
// unless followed by U+FE0F (Emoji=Yes, Emoji_Presentation=No).
var textPresentation = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00A9, Hi: 0x00AE, Stride: 5},
		{Lo: 0x203C, Hi: 0x203C, Stride: 1},
		{Lo: 0x2049, Hi: 0x2049, Stride: 1},
		{Lo: 0x2122, Hi: 0x2139, Stride: 23},
		{Lo: 0x2194, Hi: 0x2199, Stride: 1},
		{Lo: 0x21A9, Hi: 0x21AA, Stride: 1},
		{Lo: 0x2328, Hi: 0x2328, Stride: 1},
		{Lo: 0x23CF, Hi: 0x23CF, Stride: 1},
		{Lo: 0x23ED, Hi: 0x23EF, Stride: 1},
		{Lo: 0x23F1, Hi: 0x23F2, Stride: 1},
		{Lo: 0x23F8, Hi: 0x23FA, Stride: 1},
		{Lo: 0x24C2, Hi: 0x24C2, Stride: 1},
		{Lo: 0x25AA, Hi: 0x25AB, Stride: 1},
		{Lo: 0x25B6, Hi: 0x25C0, Stride: 10},
		{Lo: 0x25FB, Hi: 0x25FC, Stride: 1},
		{Lo: 0x2600, Hi: 0x2613, Stride: 1},
		{Lo: 0x2616, Hi: 0x2647, Stride: 1},
		{Lo: 0x2654, Hi: 0x267E, Stride: 1},
		{Lo: 0x2680, Hi: 0x2692, Stride: 1},
		{Lo: 0x2694, Hi: 0x26A0, Stride: 1},
		{Lo: 0x26A2, Hi: 0x26A9, Stride: 1},
		{Lo: 0x26AC, Hi: 0x26BC, Stride: 1},
		{Lo: 0x26BF, Hi: 0x26C3, Stride: 1},
		{Lo: 0x26C6, Hi: 0x26CD, Stride: 1},
		{Lo: 0x26CF, Hi: 0x26D3, Stride: 1},
		{Lo: 0x26D5, Hi: 0x26E9, Stride: 1},
		{Lo: 0x26EB, Hi: 0x26F1, Stride: 1},
		{Lo: 0x26F4, Hi: 0x26F4, Stride: 1},
		{Lo: 0x26F6, Hi: 0x26F9, Stride: 1},
		{Lo: 0x26FB, Hi: 0x26FC, Stride: 1},
		{Lo: 0x26FE, Hi: 0x2704, Stride: 1},
		{Lo: 0x2706, Hi: 0x2709, Stride: 1},
		{Lo: 0x270C, Hi: 0x2727, Stride: 1},
		{Lo: 0x2729, Hi: 0x274B, Stride: 1},
		{Lo: 0x274D, Hi: 0x274D, Stride: 1},
		{Lo: 0x274F, Hi: 0x2752, Stride: 1},
		{Lo: 0x2756, Hi: 0x2756, Stride: 1},
		{Lo: 0x2758, Hi: 0x2794, Stride: 1},
		{Lo: 0x2798, Hi: 0x27AF, Stride: 1},
		{Lo: 0x2934, Hi: 0x2935, Stride: 1},
		{Lo: 0x2B05, Hi: 0x2B07, Stride: 1},
		{Lo: 0x3030, Hi: 0x303D, Stride: 13},
		{Lo: 0x3297, Hi: 0x3299, Stride: 2},
	},
}

// modifierBase holds code points that accept a Fitzpatrick skin tone.
var modifierBase = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x261D, Hi: 0x261D, Stride: 1},
		{Lo: 0x26F9, Hi: 0x26F9, Stride: 1},
		{Lo: 0x270A, Hi: 0x270D, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1F385, Hi: 0x1F385, Stride: 1},
		{Lo: 0x1F3C2, Hi: 0x1F3C4, Stride: 1},
		{Lo: 0x1F3C7, Hi: 0x1F3C7, Stride: 1},
		{Lo: 0x1F3CA, Hi: 0x1F3CC, Stride: 1},
		{Lo: 0x1F442, Hi: 0x1F443, Stride: 1},
		{Lo: 0x1F446, Hi: 0x1F450, Stride: 1},
		{Lo: 0x1F466, Hi: 0x1F469, Stride: 1},
		{Lo: 0x1F46E, Hi: 0x1F478, Stride: 1},
		{Lo: 0x1F47C, Hi: 0x1F47C, Stride: 1},
		{Lo: 0x1F481, Hi: 0x1F483, Stride: 1},
		{Lo: 0x1F485, Hi: 0x1F487, Stride: 1},
		{Lo: 0x1F48F, Hi: 0x1F491, Stride: 2},
		{Lo: 0x1F4AA, Hi: 0x1F4AA, Stride: 1},
		{Lo: 0x1F574, Hi: 0x1F575, Stride: 1},
		{Lo: 0x1F57A, Hi: 0x1F57A, Stride: 1},
		{Lo: 0x1F590, Hi: 0x1F590, Stride: 1},
		{Lo: 0x1F595, Hi: 0x1F596, Stride: 1},
		{Lo: 0x1F645, Hi: 0x1F647, Stride: 1},
		{Lo: 0x1F64B, Hi: 0x1F64F, Stride: 1},
		{Lo: 0x1F6A3, Hi: 0x1F6A3, Stride: 1},
		{Lo: 0x1F6B4, Hi: 0x1F6B6, Stride: 1},
		{Lo: 0x1F6C0, Hi: 0x1F6CC, Stride: 12},
		{Lo: 0x1F90C, Hi: 0x1F90F, Stride: 3},
		{Lo: 0x1F918, Hi: 0x1F91F, Stride: 1},
		{Lo: 0x1F926, Hi: 0x1F926, Stride: 1},
		{Lo: 0x1F930, Hi: 0x1F939, Stride: 1},
		{Lo: 0x1F93C, Hi: 0x1F93E, Stride: 1},
		{Lo: 0x1F977, Hi: 0x1F977, Stride: 1},
		{Lo: 0x1F9B5, Hi: 0x1F9B6, Stride: 1},
		{Lo: 0x1F9B8, Hi: 0x1F9B9, Stride: 1},
		{Lo: 0x1F9BB, Hi: 0x1F9BB, Stride: 1},
		{Lo: 0x1F9CD, Hi: 0x1F9CF, Stride: 1},
		{Lo: 0x1F9D1, Hi: 0x1F9DD, Stride: 1},
		{Lo: 0x1FAC3, Hi: 0x1FAC5, Stride: 1},
		{Lo: 0x1FAF0, Hi: 0x1FAF8, Stride: 1},
	},
}

// IsEmoji reports whether r can appear as an emoji, either by default or
// with the emoji variation selector.
func IsEmoji(r rune) bool {
	return IsEmojiPresentation(r) || IsTextPresentationEmoji(r)
}

// IsEmojiPresentation reports whether r renders as emoji without U+FE0F.
func IsEmojiPresentation(r rune) bool {
	return unicode.Is(emojiPresentation, r)
}

// IsTextPresentationEmoji reports whether r is an emoji that renders as text
// unless U+FE0F follows it, such as U+2764 HEAVY BLACK HEART.
func IsTextPresentationEmoji(r rune) bool {
	return unicode.Is(textPresentation, r)
}

// IsEmojiModifier reports whether r is a Fitzpatrick skin tone modifier
// (U+1F3FB to U+1F3FF).
func IsEmojiModifier(r rune) bool {
	return r >= modifierLight && r <= modifierDark
}

// IsEmojiModifierBase reports whether r accepts a skin tone modifier.
func IsEmojiModifierBase(r rune) bool {
	return unicode.Is(modifierBase, r)
}

// IsRegionalIndicator reports whether r is one of the 26 regional indicator
// letters. Two of them form a flag.
func IsRegionalIndicator(r rune) bool {
	return r >= regionalA && r <= regionalZ
}

// IsVariationSelector reports whether r is U+FE0E or U+FE0F.
func IsVariationSelector(r rune) bool {
	return r == TextSelector || r == EmojiSelector
}

// IsKeycapBase reports whether r can start a keycap sequence: 0-9, # or *.
func IsKeycapBase(r rune) bool {
	return (r >= '0' && r <= '9') || r == '#' || r == '*'
}

// IsTagCharacter reports whether r is a tag used in subdivision flags.
func IsTagCharacter(r rune) bool {
	return r >= tagFirst && r <= tagLast
}

// IsExtender reports whether r continues the emoji before it rather than
// starting something new. Joiners, variation selectors, tags and combining
// marks extend; skin tones do not, since they are emoji of their own when
// the preceding code point cannot take them.
func IsExtender(r rune) bool {
	switch {
	case r == ZWJ, IsVariationSelector(r):
		return true
	case r == EnclosingKeycap, IsTagCharacter(r), r == CancelTag:
		return true
	}
	return unicode.In(r, unicode.Mn, unicode.Me)
}

// canStart reports whether r can begin a non-keycap emoji sequence.
func canStart(r rune) bool {
	return IsEmojiPresentation(r) || IsTextPresentationEmoji(r)
}

// canFollowZWJ reports whether r is acceptable right after a joiner.
func canFollowZWJ(r rune) bool {
	return canStart(r) || IsEmojiModifier(r)
}
