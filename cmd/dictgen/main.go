// Command dictgen builds a word-count lexicon file for the dictionary
// segmenter from a whitespace-delimited seed corpus: one "word<TAB>count"
// line per distinct word, descending by count.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cognicore/lexstat/pkg/lexstat/clean"
	"github.com/cognicore/lexstat/pkg/lexstat/corpus"
	"github.com/cognicore/lexstat/pkg/lexstat/freq"
	"github.com/cognicore/lexstat/pkg/lexstat/segment"
	"github.com/cognicore/lexstat/pkg/lexstat/zipf"
)

func main() {
	var (
		root     = flag.String("root", "", "Seed corpus root directory (required)")
		prefix   = flag.String("prefix", "", "Only read files with this name prefix")
		out      = flag.String("out", "lexicon.tsv", "Output lexicon path")
		minCount = flag.Int64("min-count", 2, "Drop words seen fewer times")
		chars    = flag.String("chars", "abcdefghijklmnopqrstuvwxyz'", "Allowed characters")
		terms    = flag.String("terminators", ".!?", "Sentence terminators")
	)
	flag.Parse()

	if *root == "" {
		log.Fatal("--root required")
	}

	cleaner, err := clean.New(clean.Options{
		Chars:       *chars,
		Terminators: *terms,
		Lowercase:   true,
		Policy:      clean.DropSpace,
	})
	if err != nil {
		log.Fatalf("build cleaner: %v", err)
	}

	src, err := corpus.NewDirSource(corpus.DirOptions{Root: *root, Prefix: *prefix})
	if err != nil {
		log.Fatalf("open corpus: %v", err)
	}

	acc := freq.NewAccumulator(cleaner, segment.NewPattern(0))
	for {
		block, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("skipping block: %v", err)
			continue
		}
		acc.Accumulate(block.Text)
	}

	stats := acc.Snapshot()
	if err := writeLexicon(*out, stats.Words, *minCount); err != nil {
		log.Fatalf("write lexicon: %v", err)
	}
	log.Printf("wrote %s (%d distinct words, %d total)", *out, stats.Words.Len(), stats.TotalWords)
}

func writeLexicon(path string, words *freq.Table, minCount int64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, e := range zipf.TopK(words, words.Len()) {
		if e.Count < minCount {
			break
		}
		fmt.Fprintf(w, "%s\t%d\n", e.Unit, e.Count)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}
