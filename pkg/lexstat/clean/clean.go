// Package clean reduces raw corpus text to a configured alphabet plus a
// sentence-terminator set, the first step of accumulation.
package clean

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
)

// DropPolicy controls what happens to runes outside the alphabet.
type DropPolicy string

const (
	// DropDelete removes disallowed runes entirely. The natural choice
	// for scripts without whitespace word boundaries.
	DropDelete DropPolicy = "delete"

	// DropSpace replaces each run of disallowed runes with a single
	// space so they still act as word boundaries.
	DropSpace DropPolicy = "space"
)

// Options configures a Cleaner.
type Options struct {
	// Ranges lists inclusive code point ranges in "lo-hi" hex form,
	// e.g. "4E00-9FA5" for the CJK unified ideographs.
	Ranges []string

	// Chars lists individual allowed runes, e.g. "abc...z'".
	Chars string

	// Terminators lists sentence terminator runes, e.g. "。" or ".!?".
	Terminators string

	Lowercase   bool
	FoldAccents bool
	Policy      DropPolicy
}

type runeRange struct {
	lo, hi rune
}

// Cleaner filters text down to an allowed alphabet and terminator set.
// Stripping is total: input that matches nothing simply contributes
// nothing.
type Cleaner struct {
	ranges      []runeRange
	chars       map[rune]struct{}
	terminators map[rune]struct{}
	lowercase   bool
	fold        bool
	policy      DropPolicy
}

// New builds a Cleaner, rejecting empty alphabets and terminator sets
// before any text is processed.
func New(opts Options) (*Cleaner, error) {
	if len(opts.Ranges) == 0 && opts.Chars == "" {
		return nil, fmt.Errorf("%w: empty alphabet filter", internalerr.ErrInvalidConfig)
	}
	if opts.Terminators == "" {
		return nil, fmt.Errorf("%w: empty sentence terminator set", internalerr.ErrInvalidConfig)
	}

	c := &Cleaner{
		chars:       make(map[rune]struct{}),
		terminators: make(map[rune]struct{}),
		lowercase:   opts.Lowercase,
		fold:        opts.FoldAccents,
		policy:      opts.Policy,
	}
	if c.policy == "" {
		c.policy = DropDelete
	}
	if c.policy != DropDelete && c.policy != DropSpace {
		return nil, fmt.Errorf("%w: unknown drop policy %q", internalerr.ErrInvalidConfig, opts.Policy)
	}

	for _, spec := range opts.Ranges {
		rr, err := parseRange(spec)
		if err != nil {
			return nil, err
		}
		c.ranges = append(c.ranges, rr)
	}
	for _, r := range opts.Chars {
		c.chars[r] = struct{}{}
	}
	for _, r := range opts.Terminators {
		c.terminators[r] = struct{}{}
	}

	return c, nil
}

func parseRange(spec string) (runeRange, error) {
	lo, hi, ok := strings.Cut(spec, "-")
	if !ok {
		return runeRange{}, fmt.Errorf("%w: alphabet range %q must be lo-hi hex", internalerr.ErrInvalidConfig, spec)
	}
	l, err := strconv.ParseUint(strings.TrimSpace(lo), 16, 32)
	if err != nil {
		return runeRange{}, fmt.Errorf("%w: alphabet range %q: %v", internalerr.ErrInvalidConfig, spec, err)
	}
	h, err := strconv.ParseUint(strings.TrimSpace(hi), 16, 32)
	if err != nil {
		return runeRange{}, fmt.Errorf("%w: alphabet range %q: %v", internalerr.ErrInvalidConfig, spec, err)
	}
	if h < l {
		return runeRange{}, fmt.Errorf("%w: alphabet range %q is inverted", internalerr.ErrInvalidConfig, spec)
	}
	return runeRange{lo: rune(l), hi: rune(h)}, nil
}

// Allowed reports whether a rune belongs to the configured alphabet.
func (c *Cleaner) Allowed(r rune) bool {
	if _, ok := c.chars[r]; ok {
		return true
	}
	for _, rr := range c.ranges {
		if r >= rr.lo && r <= rr.hi {
			return true
		}
	}
	return false
}

// IsTerminator reports whether a rune is a sentence terminator.
func (c *Cleaner) IsTerminator(r rune) bool {
	_, ok := c.terminators[r]
	return ok
}

// Strip normalizes the block to NFC and keeps only alphabet and
// terminator runes, applying the configured case and drop policies.
func (c *Cleaner) Strip(text string) string {
	text = norm.NFC.String(text)
	if c.fold {
		text = foldAccents(text)
	}

	var b strings.Builder
	b.Grow(len(text))
	pendingGap := false
	empty := true

	for _, r := range text {
		if c.lowercase {
			r = unicode.ToLower(r)
		}
		if c.Allowed(r) || c.IsTerminator(r) {
			if pendingGap && !empty {
				b.WriteByte(' ')
			}
			pendingGap = false
			empty = false
			b.WriteRune(r)
			continue
		}
		if c.policy == DropSpace {
			pendingGap = true
		}
	}

	return b.String()
}

// SplitSentences splits stripped text on the terminator set, dropping
// empty fragments so adjacent or dangling terminators contribute
// nothing. Fragments keep their internal spacing but are trimmed.
func (c *Cleaner) SplitSentences(text string) []string {
	var sentences []string
	var b strings.Builder

	flush := func() {
		s := strings.TrimSpace(b.String())
		b.Reset()
		if s != "" {
			sentences = append(sentences, s)
		}
	}

	for _, r := range text {
		if c.IsTerminator(r) {
			flush()
			continue
		}
		b.WriteRune(r)
	}
	flush()

	return sentences
}

// DropTerminators removes terminator runes from stripped text. Under
// the space policy each removed terminator still acts as a boundary.
func (c *Cleaner) DropTerminators(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	pendingGap := false
	empty := true

	for _, r := range text {
		if c.IsTerminator(r) {
			if c.policy == DropSpace {
				pendingGap = true
			}
			continue
		}
		if r == ' ' && !c.Allowed(' ') {
			pendingGap = true
			continue
		}
		if pendingGap && !empty {
			b.WriteByte(' ')
		}
		pendingGap = false
		empty = false
		b.WriteRune(r)
	}

	return b.String()
}

// Runes returns the alphabet runes of stripped text, skipping the
// space separators introduced by the space policy.
func (c *Cleaner) Runes(text string) []rune {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		if c.Allowed(r) {
			out = append(out, r)
		}
	}
	return out
}

// foldAccents decomposes, removes nonspacing marks and recomposes, so
// "café" becomes "cafe".
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
