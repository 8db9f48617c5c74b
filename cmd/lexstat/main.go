// Command lexstat runs a corpus frequency analysis: it folds every
// corpus file into character/word/sentence frequency tables, prints a
// JSON summary, and renders top-k and rank-frequency charts.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"gonum.org/v1/plot"

	"github.com/cognicore/lexstat/pkg/lexstat"
	"github.com/cognicore/lexstat/pkg/lexstat/config"
	"github.com/cognicore/lexstat/pkg/lexstat/corpus"
	"github.com/cognicore/lexstat/pkg/lexstat/report"
	"github.com/cognicore/lexstat/pkg/lexstat/store"
	"github.com/cognicore/lexstat/pkg/lexstat/store/sqlite"
)

type summary struct {
	RunID     string            `json:"run_id"`
	Profile   string            `json:"profile"`
	Processed int64             `json:"processed_blocks"`
	Skipped   int64             `json:"skipped_blocks"`
	Results   []granularityJSON `json:"results"`
}

type granularityJSON struct {
	Name     string      `json:"name"`
	Total    int64       `json:"total"`
	Distinct int         `json:"distinct"`
	Entropy  float64     `json:"entropy_bits"`
	TopK     []unitCount `json:"top_k"`
}

type unitCount struct {
	Unit  string `json:"unit"`
	Count int64  `json:"count"`
}

func main() {
	var (
		configPath = flag.String("config", "", "Path to profile YAML (required)")
		root       = flag.String("root", "", "Override corpus root directory")
		out        = flag.String("out", "", "Override chart output path")
		quiet      = flag.Bool("quiet", false, "Suppress progress logging")
	)
	flag.Parse()

	if *configPath == "" {
		log.Fatal("--config required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *root != "" {
		cfg.Corpus.Root = *root
	}
	if *out != "" {
		cfg.Report.ChartPath = *out
	}

	components, err := cfg.Build()
	if err != nil {
		log.Fatalf("build components: %v", err)
	}

	var src corpus.Source
	dir, err := corpus.NewDirSource(corpus.DirOptions{
		Root:    cfg.Corpus.Root,
		Subdirs: cfg.Corpus.Subdirs,
		Prefix:  cfg.Corpus.Prefix,
	})
	if err != nil {
		log.Fatalf("open corpus: %v", err)
	}
	src = dir
	if cfg.Corpus.StripHTML {
		src = corpus.NewHTMLSource(src)
	}

	runner, err := lexstat.NewRunner(lexstat.Options{
		Cleaner:   components.Cleaner,
		Segmenter: components.Segmenter,
		Alpha:     cfg.Alpha(),
		TopK:      cfg.Report.TopK,
		Quiet:     *quiet,
	})
	if err != nil {
		log.Fatalf("create runner: %v", err)
	}

	ctx := context.Background()
	results, err := runner.Run(ctx, src)
	if err != nil {
		log.Fatalf("analysis failed: %v", err)
	}

	printSummary(cfg.Profile.Name, results)

	if cfg.Report.ChartPath != "" {
		if err := renderCharts(cfg.Report.ChartPath, results); err != nil {
			log.Fatalf("render charts: %v", err)
		}
		log.Printf("charts written to %s", cfg.Report.ChartPath)
	}

	if cfg.Store.SQLitePath != "" {
		if err := saveRun(ctx, cfg, results); err != nil {
			log.Fatalf("save run: %v", err)
		}
		log.Printf("run %s saved to %s", results.RunID, cfg.Store.SQLitePath)
	}
}

func printSummary(profile string, results *lexstat.Results) {
	s := summary{
		RunID:     results.RunID,
		Profile:   profile,
		Processed: results.Processed,
		Skipped:   results.Skipped,
	}
	for _, g := range results.Granularities() {
		gj := granularityJSON{
			Name:     g.Name,
			Total:    g.Total,
			Distinct: g.Table.Len(),
			Entropy:  g.Entropy,
		}
		for _, e := range g.TopK {
			gj.TopK = append(gj.TopK, unitCount{Unit: e.Unit, Count: e.Count})
		}
		s.Results = append(s.Results, gj)
	}

	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		log.Fatalf("marshal summary: %v", err)
	}
	fmt.Println(string(out))
}

// renderCharts draws a 2x2 grid: top-k bars for chars and words on the
// first row, log-log rank-frequency for both on the second. Empty
// granularities leave their panel blank.
func renderCharts(path string, results *lexstat.Results) error {
	charBar, err := report.TopKBar("Character frequency", results.Char.TopK)
	if err != nil {
		return err
	}
	wordBar, err := report.TopKBar("Word frequency", results.Word.TopK)
	if err != nil {
		return err
	}
	charZipf, err := report.RankFreqLogLog("Character rank-frequency", results.Char.Series)
	if err != nil {
		return err
	}
	wordZipf, err := report.RankFreqLogLog("Word rank-frequency", results.Word.Series)
	if err != nil {
		return err
	}

	grid := [][]*plot.Plot{
		{charBar, wordBar},
		{charZipf, wordZipf},
	}
	return report.WriteGrid(path, grid)
}

func saveRun(ctx context.Context, cfg *config.Config, results *lexstat.Results) error {
	st, err := sqlite.Open(ctx, cfg.Store.SQLitePath)
	if err != nil {
		return err
	}
	defer st.Close()

	run := store.RunSummary{
		ID:        results.RunID,
		Profile:   cfg.Profile.Name,
		StartedAt: results.StartedAt,
		Blocks:    results.Processed,
		Skipped:   results.Skipped,
	}
	for _, g := range results.Granularities() {
		gs := store.GranularitySummary{
			Name:     g.Name,
			Total:    g.Total,
			Distinct: int64(g.Table.Len()),
			Entropy:  g.Entropy,
		}
		for _, e := range g.TopK {
			gs.TopK = append(gs.TopK, store.UnitCount{Unit: e.Unit, Count: e.Count})
		}
		run.Granularities = append(run.Granularities, gs)
	}

	return st.SaveRun(ctx, run)
}
