// Package zipf derives rank-frequency series and top-k selections from
// frequency tables, the inputs for power-law inspection.
package zipf

import (
	"sort"

	"github.com/cognicore/lexstat/pkg/lexstat/freq"
)

// Series pairs ranks 1..N with the matching descending frequencies,
// used as (x, y) for log-log plotting.
type Series struct {
	Rank []float64
	Freq []float64
}

// Len returns the number of ranked units.
func (s Series) Len() int {
	return len(s.Rank)
}

// RankFrequency sorts the table's counts in descending order and pairs
// them with ranks 1..N. Equal counts keep their first-seen order, so
// the series is reproducible across runs over identical input.
func RankFrequency(table *freq.Table) Series {
	counts := table.Counts()
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i] > counts[j]
	})

	s := Series{
		Rank: make([]float64, len(counts)),
		Freq: make([]float64, len(counts)),
	}
	for i, c := range counts {
		s.Rank[i] = float64(i + 1)
		s.Freq[i] = float64(c)
	}
	return s
}

// TopK returns the min(k, |table|) most frequent units in descending
// count order. Equal counts keep their first-seen order, so repeated
// calls on an unmutated table are bit-identical.
func TopK(table *freq.Table, k int) []freq.Entry {
	if k <= 0 {
		return nil
	}

	entries := table.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if len(entries) > k {
		entries = entries[:k]
	}
	return entries
}
