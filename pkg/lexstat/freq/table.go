package freq

// Table counts occurrences per distinct unit at one granularity
// (character, word, or sentence).
//
// Insertion order is recorded so that iteration via Entries is in
// first-seen order. Downstream ranking breaks ties by that order,
// which makes repeated runs over identical input bit-reproducible.
type Table struct {
	counts map[string]int64
	order  []string
}

// NewTable creates an empty frequency table.
func NewTable() *Table {
	return &Table{counts: make(map[string]int64)}
}

// Entry is one (unit, count) pair.
type Entry struct {
	Unit  string
	Count int64
}

// Add increments the count for a unit. Negative increments are ignored:
// tables only ever grow.
func (t *Table) Add(unit string, n int64) {
	if n <= 0 {
		return
	}
	if _, ok := t.counts[unit]; !ok {
		t.order = append(t.order, unit)
	}
	t.counts[unit] += n
}

// Count returns the count for a unit, zero if unseen.
func (t *Table) Count(unit string) int64 {
	return t.counts[unit]
}

// Len returns the number of distinct units.
func (t *Table) Len() int {
	return len(t.counts)
}

// Sum returns the sum of all counts.
func (t *Table) Sum() int64 {
	var sum int64
	for _, c := range t.counts {
		sum += c
	}
	return sum
}

// Entries returns all (unit, count) pairs in first-seen order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, u := range t.order {
		entries = append(entries, Entry{Unit: u, Count: t.counts[u]})
	}
	return entries
}

// Counts returns all counts in first-seen order.
func (t *Table) Counts() []int64 {
	counts := make([]int64, 0, len(t.order))
	for _, u := range t.order {
		counts = append(counts, t.counts[u])
	}
	return counts
}

// Clone returns a deep copy of the table, preserving first-seen order.
func (t *Table) Clone() *Table {
	c := &Table{
		counts: make(map[string]int64, len(t.counts)),
		order:  make([]string, len(t.order)),
	}
	copy(c.order, t.order)
	for u, n := range t.counts {
		c.counts[u] = n
	}
	return c
}

// MergeFrom adds every count of other into t. Units new to t keep the
// order in which other first saw them.
func (t *Table) MergeFrom(other *Table) {
	for _, u := range other.order {
		t.Add(u, other.counts[u])
	}
}
