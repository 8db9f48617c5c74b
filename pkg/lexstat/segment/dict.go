package segment

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
)

// Dict segments text without whitespace word boundaries by greedy
// forward maximum match against a lexicon: at each position the longest
// lexicon entry wins, and a rune covered by no entry is emitted as a
// single-rune word.
type Dict struct {
	trie *prefixTrie
	size int
}

// NewDict builds a dictionary segmenter from lexicon entries.
func NewDict(entries []string) *Dict {
	d := &Dict{trie: newPrefixTrie()}
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		d.trie.add(e)
		d.size++
	}
	return d
}

// LoadDict builds a dictionary segmenter from a lexicon file with one
// entry per line. Anything after the first tab (typically a frequency)
// is ignored; blank lines and #-comments are skipped.
func LoadDict(path string) (*Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon %s: %w", path, err)
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, _, _ := strings.Cut(line, "\t")
		entries = append(entries, strings.TrimSpace(word))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: lexicon %s has no entries", internalerr.ErrInvalidConfig, path)
	}

	return NewDict(entries), nil
}

// Size returns the number of lexicon entries.
func (d *Dict) Size() int {
	return d.size
}

// Segment implements Segmenter.
func (d *Dict) Segment(text string) []string {
	runes := []rune(text)
	var words []string

	for i := 0; i < len(runes); {
		if runes[i] == ' ' {
			i++
			continue
		}
		n := d.trie.longestMatch(runes[i:])
		if n == 0 {
			n = 1
		}
		words = append(words, string(runes[i:i+n]))
		i += n
	}

	return words
}
