package segment

// prefixTrie indexes lexicon entries by rune for longest-match lookup.
type prefixTrie struct {
	root *trieNode
}

type trieNode struct {
	terminal bool
	children map[rune]*trieNode
}

func newPrefixTrie() *prefixTrie {
	return &prefixTrie{root: &trieNode{children: map[rune]*trieNode{}}}
}

func (t *prefixTrie) add(word string) {
	if word == "" {
		return
	}
	cur := t.root
	for _, r := range word {
		next, ok := cur.children[r]
		if !ok {
			next = &trieNode{children: map[rune]*trieNode{}}
			cur.children[r] = next
		}
		cur = next
	}
	cur.terminal = true
}

// longestMatch returns the rune length of the longest lexicon entry
// that prefixes text, or zero when no entry matches.
func (t *prefixTrie) longestMatch(text []rune) int {
	cur := t.root
	longest := 0
	for i, r := range text {
		next, ok := cur.children[r]
		if !ok {
			break
		}
		cur = next
		if cur.terminal {
			longest = i + 1
		}
	}
	return longest
}
