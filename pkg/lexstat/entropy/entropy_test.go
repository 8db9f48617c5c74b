package entropy

import (
	"math"
	"testing"

	"github.com/cognicore/lexstat/pkg/lexstat/freq"
)

func tableOf(counts map[string]int64) (*freq.Table, int64) {
	t := freq.NewTable()
	var total int64
	// deterministic insertion order is irrelevant for entropy
	for _, u := range []string{"a", "b", "c", "d", "x"} {
		if c, ok := counts[u]; ok {
			t.Add(u, c)
			total += c
		}
	}
	return t, total
}

func TestSmoothedEmptyTable(t *testing.T) {
	if got := Smoothed(freq.NewTable(), 0, 1e-5); got != 0.0 {
		t.Errorf("entropy of empty table = %v, want exactly 0.0", got)
	}
}

func TestSmoothedUniform(t *testing.T) {
	table, total := tableOf(map[string]int64{"a": 5, "b": 5, "c": 5, "d": 5})

	// four equiprobable units: entropy ~ log2(4) = 2, smoothing nudges
	// it only slightly
	got := Smoothed(table, total, 1e-5)
	if math.Abs(got-2.0) > 1e-3 {
		t.Errorf("uniform entropy = %v, want ~2.0", got)
	}
}

func TestSmoothedMatchesFormula(t *testing.T) {
	table, total := tableOf(map[string]int64{"a": 3, "b": 1})
	alpha := 0.5

	// hand-rolled: p_a = 3.5/5, p_b = 1.5/5
	want := 0.0
	for _, c := range []float64{3, 1} {
		p := (c + alpha) / (float64(total) + alpha*2)
		want -= p * math.Log2(p)
	}

	got := Smoothed(table, total, alpha)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("entropy = %v, want %v", got, want)
	}
}

func TestSmoothedBounds(t *testing.T) {
	tables := []map[string]int64{
		{"a": 1},
		{"a": 100, "b": 1},
		{"a": 10, "b": 10, "c": 10},
		{"a": 1, "b": 2, "c": 3, "d": 4},
	}
	for _, counts := range tables {
		table, total := tableOf(counts)
		for _, alpha := range []float64{0, 1e-10, 1e-5, 0.5, 1} {
			got := Smoothed(table, total, alpha)
			upper := math.Log2(float64(total) + alpha*float64(table.Len()))
			if got < 0 || got > upper+1e-12 {
				t.Errorf("entropy(%v, alpha=%v) = %v out of [0, %v]", counts, alpha, got, upper)
			}
		}
	}
}

func TestSmoothedSingleUnitApproachesZero(t *testing.T) {
	table, total := tableOf(map[string]int64{"x": 10})

	prev := math.Inf(1)
	for _, alpha := range []float64{1, 0.1, 1e-3, 1e-6, 1e-9} {
		got := Smoothed(table, total, alpha)
		if got > prev {
			t.Errorf("entropy not shrinking with alpha: alpha=%v got %v prev %v", alpha, got, prev)
		}
		prev = got
	}
	if prev > 1e-6 {
		t.Errorf("single-unit entropy should approach 0 as alpha->0, got %v", prev)
	}
	if got := Smoothed(table, total, 0); got != 0 {
		t.Errorf("unsmoothed single-unit entropy = %v, want 0", got)
	}
}

func TestSmoothedMonotonicInAlpha(t *testing.T) {
	// skewed table: more smoothing pushes toward uniform, entropy must
	// not decrease
	table, total := tableOf(map[string]int64{"a": 100, "b": 5, "c": 1})

	prev := -1.0
	for _, alpha := range []float64{0, 1e-5, 1e-3, 0.1, 1, 10} {
		got := Smoothed(table, total, alpha)
		if got < prev-1e-12 {
			t.Errorf("entropy decreased with alpha=%v: %v < %v", alpha, got, prev)
		}
		prev = got
	}
}
