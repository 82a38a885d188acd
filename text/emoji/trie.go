package emoji

// Matcher finds the longest known emoji sequence at the start of a rune
// slice. It is a trie keyed by code point. U+FE0F is optional on both sides:
// "2764" matches U+2764 U+FE0F, and "1f3f3-fe0f-200d-1f308" also matches
// the same flag spelled without the selector.
//
// A Matcher is immutable after construction and safe for concurrent use.
type Matcher struct {
	root node
	size int
}

type node struct {
	next map[rune]*node
	end  bool

	// key is the spelling the sequence was added under. exact is false
	// when the node was reached only by a selector-free variant.
	key   string
	exact bool
}

// NewMatcher builds a matcher over seqs. Empty sequences are ignored. Match
// reports each sequence under its RawKey.
func NewMatcher(seqs [][]rune) *Matcher {
	m := &Matcher{}
	for _, seq := range seqs {
		m.add(seq, RawKey(seq))
	}
	return m
}

// NewMatcherFromKeys builds a matcher from code-point keys, skipping keys
// that do not parse. It returns the matcher and the keys it skipped. Match
// reports each sequence under the key it was given here.
func NewMatcherFromKeys(keys []string) (*Matcher, []string) {
	m := &Matcher{}
	var skipped []string
	for _, k := range keys {
		runes, err := ParseKey(k)
		if err != nil {
			skipped = append(skipped, k)
			continue
		}
		m.add(runes, k)
	}
	return m, skipped
}

func (m *Matcher) add(seq []rune, key string) {
	if len(seq) == 0 {
		return
	}
	if m.insert(seq, key, true) {
		m.size++
	}

	bare := make([]rune, 0, len(seq))
	for _, r := range seq {
		if r != EmojiSelector {
			bare = append(bare, r)
		}
	}
	if len(bare) > 0 && len(bare) < len(seq) {
		m.insert(bare, key, false)
	}
}

// insert stores seq under key and reports whether an exact spelling was
// newly added. An exact spelling replaces the key left by a selector-free
// variant; otherwise the first key wins.
func (m *Matcher) insert(seq []rune, key string, exact bool) bool {
	n := &m.root
	for _, r := range seq {
		if n.next == nil {
			n.next = make(map[rune]*node)
		}
		child, ok := n.next[r]
		if !ok {
			child = &node{}
			n.next[r] = child
		}
		n = child
	}
	if n.exact || (n.end && !exact) {
		return false
	}
	n.end, n.key, n.exact = true, key, exact
	return exact
}

// Len returns the number of distinct sequences added to the matcher.
func (m *Matcher) Len() int {
	if m == nil {
		return 0
	}
	return m.size
}

// Match returns the number of runes covered by the longest known sequence
// at the start of runes, or 0 if none matches, together with the key that
// sequence was added under. An emoji selector directly after a match is
// counted as part of it.
func (m *Matcher) Match(runes []rune) (int, string) {
	if m == nil {
		return 0, ""
	}

	best, key := 0, ""
	n := &m.root
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		child := n.next[r]
		if child == nil {
			if r == EmojiSelector && n != &m.root {
				continue
			}
			break
		}
		n = child
		if n.end {
			best, key = i+1, n.key
		}
	}

	if best > 0 && best < len(runes) && runes[best] == EmojiSelector {
		best++
	}
	return best, key
}
