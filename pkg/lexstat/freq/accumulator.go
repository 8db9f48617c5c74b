package freq

import (
	"github.com/cognicore/lexstat/pkg/lexstat/clean"
	"github.com/cognicore/lexstat/pkg/lexstat/segment"
)

// Accumulator folds a stream of text blocks into character, word and
// sentence frequency tables plus running totals.
//
// Counts only ever increase; after every Accumulate call each total
// equals the sum of the corresponding table's counts.
type Accumulator struct {
	cleaner   *clean.Cleaner
	segmenter segment.Segmenter

	chars     *Table
	words     *Table
	sentences *Table

	totalChars     int64
	totalWords     int64
	totalSentences int64
	blocks         int64
}

// NewAccumulator creates an accumulator using the given cleaner and
// word segmenter.
func NewAccumulator(cleaner *clean.Cleaner, segmenter segment.Segmenter) *Accumulator {
	return &Accumulator{
		cleaner:   cleaner,
		segmenter: segmenter,
		chars:     NewTable(),
		words:     NewTable(),
		sentences: NewTable(),
	}
}

// Accumulate folds one raw text block into the tables. It strictly
// extends the tables and totals; an empty or fully-filtered block is a
// no-op apart from the block counter.
func (a *Accumulator) Accumulate(block string) {
	a.blocks++

	text := a.cleaner.Strip(block)

	for _, s := range a.cleaner.SplitSentences(text) {
		a.sentences.Add(s, 1)
		a.totalSentences++
	}

	body := a.cleaner.DropTerminators(text)

	for _, r := range a.cleaner.Runes(body) {
		a.chars.Add(string(r), 1)
		a.totalChars++
	}

	for _, w := range a.segmenter.Segment(body) {
		a.words.Add(w, 1)
		a.totalWords++
	}
}

// Stats is an immutable snapshot of accumulated frequency statistics.
type Stats struct {
	Chars     *Table
	Words     *Table
	Sentences *Table

	TotalChars     int64
	TotalWords     int64
	TotalSentences int64
	Blocks         int64
}

// Snapshot returns a deep copy of the accumulated statistics.
func (a *Accumulator) Snapshot() Stats {
	return Stats{
		Chars:          a.chars.Clone(),
		Words:          a.words.Clone(),
		Sentences:      a.sentences.Clone(),
		TotalChars:     a.totalChars,
		TotalWords:     a.totalWords,
		TotalSentences: a.totalSentences,
		Blocks:         a.blocks,
	}
}

// Merge combines two snapshots by summing counts and totals. Counts are
// associative and commutative, so per-worker partial stats merged in any
// order yield the same tables as a single sequential pass.
func Merge(a, b Stats) Stats {
	out := Stats{
		Chars:          a.Chars.Clone(),
		Words:          a.Words.Clone(),
		Sentences:      a.Sentences.Clone(),
		TotalChars:     a.TotalChars + b.TotalChars,
		TotalWords:     a.TotalWords + b.TotalWords,
		TotalSentences: a.TotalSentences + b.TotalSentences,
		Blocks:         a.Blocks + b.Blocks,
	}
	out.Chars.MergeFrom(b.Chars)
	out.Words.MergeFrom(b.Words)
	out.Sentences.MergeFrom(b.Sentences)
	return out
}
