// Package segment provides pluggable word segmentation strategies for
// the frequency accumulator.
package segment

import (
	"strings"
)

// Segmenter splits cleaned, terminator-free text into word units.
type Segmenter interface {
	Segment(text string) []string
}

// DefaultMinWordLen is the minimum rune length for pattern-segmented
// words. Single letters carry little lexical signal.
const DefaultMinWordLen = 2

// Pattern segments whitespace-delimited text: each space-separated
// token is a word candidate, leading and trailing apostrophes are
// stripped, internal apostrophes are kept ("don't", "o'clock"), and
// candidates shorter than the minimum length are dropped.
type Pattern struct {
	minLen int
}

// NewPattern creates a pattern segmenter. minLen values below 1 fall
// back to DefaultMinWordLen.
func NewPattern(minLen int) *Pattern {
	if minLen < 1 {
		minLen = DefaultMinWordLen
	}
	return &Pattern{minLen: minLen}
}

// Segment implements Segmenter.
func (p *Pattern) Segment(text string) []string {
	var words []string
	for _, tok := range strings.Fields(text) {
		w := strings.Trim(tok, "'")
		if w == "" {
			continue
		}
		if len([]rune(w)) < p.minLen {
			continue
		}
		words = append(words, w)
	}
	return words
}
