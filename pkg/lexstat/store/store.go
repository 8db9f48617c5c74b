// Package store defines optional persistence for finished run
// summaries. Only final results are stored, never intermediate tables.
package store

import (
	"context"
	"time"
)

// Store persists and retrieves run summaries.
type Store interface {
	Close() error

	SaveRun(ctx context.Context, r RunSummary) error
	GetRun(ctx context.Context, id string) (RunSummary, error)
	ListRuns(ctx context.Context, limit int) ([]RunSummary, error)
}

// RunSummary is the durable record of one analysis run.
type RunSummary struct {
	ID        string
	Profile   string
	StartedAt time.Time
	Blocks    int64
	Skipped   int64

	Granularities []GranularitySummary
}

// GranularitySummary records the per-granularity results.
type GranularitySummary struct {
	Name     string // "char", "word" or "sentence"
	Total    int64
	Distinct int64
	Entropy  float64 // bits
	TopK     []UnitCount
}

// UnitCount is one ranked (unit, count) pair.
type UnitCount struct {
	Unit  string
	Count int64
}
