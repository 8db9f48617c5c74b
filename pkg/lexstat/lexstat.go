// Package lexstat computes streaming lexical statistics over a text
// corpus: character, word and sentence frequency tables with smoothed
// entropy, rank-frequency series and deterministic top-k per
// granularity.
package lexstat

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/lexstat/pkg/lexstat/clean"
	"github.com/cognicore/lexstat/pkg/lexstat/corpus"
	"github.com/cognicore/lexstat/pkg/lexstat/entropy"
	"github.com/cognicore/lexstat/pkg/lexstat/freq"
	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
	"github.com/cognicore/lexstat/pkg/lexstat/segment"
	"github.com/cognicore/lexstat/pkg/lexstat/zipf"
)

// Granularity names used throughout results and reports.
const (
	GranularityChar     = "char"
	GranularityWord     = "word"
	GranularitySentence = "sentence"
)

// ProgressInterval is how many processed blocks pass between progress
// log lines.
const ProgressInterval = 10

// Options configures a Runner.
type Options struct {
	Cleaner   *clean.Cleaner
	Segmenter segment.Segmenter

	// Alpha is the additive smoothing constant for entropy.
	Alpha float64

	// TopK is the selection size per granularity.
	TopK int

	// Logger receives progress and skip warnings; nil uses the default
	// logger.
	Logger *log.Logger

	// Quiet suppresses progress logging.
	Quiet bool
}

// Runner drives one analysis run: it pulls blocks from a source,
// folds them into the accumulator strictly in order, and derives the
// per-granularity results once the stream ends.
type Runner struct {
	opts    Options
	acc     *freq.Accumulator
	entropy *ulid.MonotonicEntropy
}

// NewRunner creates a Runner. Cleaner and Segmenter are required.
func NewRunner(opts Options) (*Runner, error) {
	if opts.Cleaner == nil || opts.Segmenter == nil {
		return nil, fmt.Errorf("%w: runner needs a cleaner and a segmenter", internalerr.ErrInvalidConfig)
	}
	if opts.Alpha < 0 {
		return nil, fmt.Errorf("%w: smoothing alpha %v is negative", internalerr.ErrInvalidConfig, opts.Alpha)
	}
	if opts.TopK < 1 {
		return nil, fmt.Errorf("%w: top-k %d must be at least 1", internalerr.ErrInvalidConfig, opts.TopK)
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	return &Runner{
		opts:    opts,
		acc:     freq.NewAccumulator(opts.Cleaner, opts.Segmenter),
		entropy: ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// GranularityResult holds the derived outputs for one granularity.
type GranularityResult struct {
	Name    string
	Table   *freq.Table
	Total   int64
	Entropy float64 // bits
	Series  zipf.Series
	TopK    []freq.Entry
}

// Results is everything one run produces.
type Results struct {
	RunID     string
	StartedAt time.Time
	Processed int64
	Skipped   int64

	Stats freq.Stats

	Char     GranularityResult
	Word     GranularityResult
	Sentence GranularityResult
}

// Granularities returns the three results in char, word, sentence
// order.
func (r *Results) Granularities() []GranularityResult {
	return []GranularityResult{r.Char, r.Word, r.Sentence}
}

// Run pulls blocks from src until io.EOF, accumulating sequentially.
// Unreadable blocks are logged, counted and skipped; they never abort
// the run. A run in which no block could be accumulated fails with
// ErrEmptyCorpus.
func (r *Runner) Run(ctx context.Context, src corpus.Source) (*Results, error) {
	res := &Results{
		RunID:     ulid.MustNew(ulid.Now(), r.entropy).String(),
		StartedAt: time.Now(),
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		block, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			res.Skipped++
			r.opts.Logger.Printf("run %s: skipping block: %v", res.RunID, err)
			continue
		}

		r.acc.Accumulate(block.Text)
		res.Processed++
		if !r.opts.Quiet && res.Processed%ProgressInterval == 0 {
			r.opts.Logger.Printf("run %s: processed %d blocks", res.RunID, res.Processed)
		}
	}

	if res.Processed == 0 {
		return nil, fmt.Errorf("%w: no blocks accumulated (skipped %d)", internalerr.ErrEmptyCorpus, res.Skipped)
	}

	res.Stats = r.acc.Snapshot()
	res.Char = r.derive(GranularityChar, res.Stats.Chars, res.Stats.TotalChars)
	res.Word = r.derive(GranularityWord, res.Stats.Words, res.Stats.TotalWords)
	res.Sentence = r.derive(GranularitySentence, res.Stats.Sentences, res.Stats.TotalSentences)

	return res, nil
}

func (r *Runner) derive(name string, table *freq.Table, total int64) GranularityResult {
	return GranularityResult{
		Name:    name,
		Table:   table,
		Total:   total,
		Entropy: entropy.Smoothed(table, total, r.opts.Alpha),
		Series:  zipf.RankFrequency(table),
		TopK:    zipf.TopK(table, r.opts.TopK),
	}
}
