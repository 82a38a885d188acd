package emoji

// SequenceType classifies a parsed emoji sequence.
type SequenceType int

const (
	// SequenceSimple is a single emoji code point.
	SequenceSimple SequenceType = iota

	// SequenceZWJ is two or more emoji joined by U+200D (families, professions).
	SequenceZWJ

	// SequenceFlag is a pair of regional indicators, e.g. U+1F1E7 U+1F1F7.
	SequenceFlag

	// SequenceKeycap is a digit, # or * followed by U+20E3,
	// optionally with U+FE0F in between.
	SequenceKeycap

	// SequenceModified is a modifier base followed by a skin tone.
	SequenceModified

	// SequenceTag is a subdivision flag: U+1F3F4, tag letters, U+E007F.
	SequenceTag

	// SequencePresentation is a text-default emoji forced to emoji
	// presentation by U+FE0F, e.g. U+2764 U+FE0F.
	SequencePresentation
)

var sequenceTypeNames = [...]string{
	SequenceSimple:       "Simple",
	SequenceZWJ:          "ZWJ",
	SequenceFlag:         "Flag",
	SequenceKeycap:       "Keycap",
	SequenceModified:     "Modified",
	SequenceTag:          "Tag",
	SequencePresentation: "Presentation",
}

// String returns the name of the sequence type.
func (t SequenceType) String() string {
	if t >= 0 && int(t) < len(sequenceTypeNames) {
		return sequenceTypeNames[t]
	}
	return "Unknown"
}

// Sequence is one complete emoji, possibly spanning several code points.
type Sequence struct {
	// Runes are the code points of the sequence as they appeared in the input,
	// including any variation selectors.
	Runes []rune

	// Type is the structural kind of the sequence.
	Type SequenceType

	// Base is the first code point.
	Base rune

	// Modifier is the skin tone applied to Base, or zero.
	Modifier rune
}

// String returns the sequence as text.
func (s Sequence) String() string {
	return string(s.Runes)
}

// Len returns the number of code points in the sequence.
func (s Sequence) Len() int {
	return len(s.Runes)
}

// Key returns the canonical atlas key of the sequence.
func (s Sequence) Key() string {
	return Key(s.Runes)
}

// Parse returns every emoji sequence found in runes, skipping anything that
// is not an emoji.
func Parse(runes []rune) []Sequence {
	var seqs []Sequence
	for i := 0; i < len(runes); {
		seq, n := ParseAt(runes[i:])
		if n == 0 {
			i++
			continue
		}
		seqs = append(seqs, seq)
		i += n
	}
	return seqs
}

// ParseString is Parse for a string.
func ParseString(s string) []Sequence {
	return Parse([]rune(s))
}

// ParseAt parses the longest well-formed emoji sequence at the start of runes
// and returns it with the number of runes consumed. It returns 0 when runes
// does not start with an emoji.
//
// A text-default code point such as U+2764 only counts as emoji when U+FE0F,
// a skin tone or a joiner follows it. U+FE0E right after the first code point
// always yields 0.
func ParseAt(runes []rune) (Sequence, int) {
	if len(runes) == 0 {
		return Sequence{}, 0
	}
	r := runes[0]

	switch {
	case IsRegionalIndicator(r) && len(runes) > 1 && IsRegionalIndicator(runes[1]):
		return Sequence{Runes: runes[:2], Type: SequenceFlag, Base: r}, 2

	case r == BlackFlag:
		if n := tagLength(runes); n > 0 {
			return Sequence{Runes: runes[:n], Type: SequenceTag, Base: r}, n
		}

	case IsKeycapBase(r):
		n := keycapLength(runes)
		if n == 0 {
			return Sequence{}, 0
		}
		return Sequence{Runes: runes[:n], Type: SequenceKeycap, Base: r}, n
	}

	if !canStart(r) {
		return Sequence{}, 0
	}
	return parseExtended(runes)
}

// tagLength returns the length of a subdivision flag at the start of runes.
func tagLength(runes []rune) int {
	i := 1
	for i < len(runes) && IsTagCharacter(runes[i]) {
		i++
	}
	if i > 1 && i < len(runes) && runes[i] == CancelTag {
		return i + 1
	}
	return 0
}

// keycapLength returns the length of a keycap sequence at the start of runes.
func keycapLength(runes []rune) int {
	i := 1
	if i < len(runes) && runes[i] == EmojiSelector {
		i++
	}
	if i < len(runes) && runes[i] == EnclosingKeycap {
		return i + 1
	}
	return 0
}

// parseExtended parses a base emoji with its optional selector, skin tone and
// any joined components.
func parseExtended(runes []rune) (Sequence, int) {
	base := runes[0]
	seq := Sequence{Type: SequenceSimple, Base: base}

	i := 1
	if i < len(runes) && runes[i] == TextSelector {
		return Sequence{}, 0
	}
	if i < len(runes) && runes[i] == EmojiSelector {
		seq.Type = SequencePresentation
		i++
	}
	if i < len(runes) && IsEmojiModifier(runes[i]) && IsEmojiModifierBase(base) {
		seq.Modifier = runes[i]
		seq.Type = SequenceModified
		i++
	}

	for i+1 < len(runes) && runes[i] == ZWJ {
		n := componentLength(runes[i+1:])
		if n == 0 {
			break
		}
		i += 1 + n
		seq.Type = SequenceZWJ
	}

	if seq.Type == SequenceSimple && !IsEmojiPresentation(base) {
		return Sequence{}, 0
	}

	seq.Runes = runes[:i]
	return seq, i
}

// componentLength returns the length of the emoji following a joiner.
func componentLength(runes []rune) int {
	r := runes[0]
	if !canFollowZWJ(r) {
		return 0
	}

	i := 1
	if i < len(runes) && IsVariationSelector(runes[i]) {
		if runes[i] == TextSelector {
			return 0
		}
		i++
	}
	if i < len(runes) && IsEmojiModifier(runes[i]) && IsEmojiModifierBase(r) {
		i++
	}
	return i
}
