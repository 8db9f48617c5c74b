package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
	"github.com/cognicore/lexstat/pkg/lexstat/segment"
)

const sampleConfig = `
profile:
  name: wiki-zh
  alphabet:
    ranges: ["4E00-9FA5"]
  terminators: "。"
  segmenter: dict
  dict_path: %q
corpus:
  root: wiki_zh
  subdirs: [AA, AB]
  prefix: wiki_
report:
  top_k: 50
  chart_path: result-wiki.png
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeLexicon(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lexicon.tsv")
	if err := os.WriteFile(path, []byte("你好\t10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndBuildDictProfile(t *testing.T) {
	lexicon := writeLexicon(t)
	path := writeConfig(t, fmt.Sprintf(sampleConfig, lexicon))

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Profile.Name != "wiki-zh" {
		t.Errorf("name = %q", cfg.Profile.Name)
	}
	if cfg.Report.TopK != 50 {
		t.Errorf("top_k = %d", cfg.Report.TopK)
	}
	// alpha absent: default applies
	if cfg.Alpha() != 1e-5 {
		t.Errorf("alpha = %v, want default 1e-5", cfg.Alpha())
	}

	components, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := components.Segmenter.(*segment.Dict); !ok {
		t.Errorf("segmenter = %T, want *segment.Dict", components.Segmenter)
	}
	if !components.Cleaner.Allowed('中') || components.Cleaner.Allowed('a') {
		t.Error("alphabet filter wrong")
	}
}

func TestLoadDefaultsPatternSegmenter(t *testing.T) {
	path := writeConfig(t, `
profile:
  alphabet:
    chars: "abc"
  terminators: "."
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Profile.Segmenter != SegmenterPattern {
		t.Errorf("segmenter = %q", cfg.Profile.Segmenter)
	}
	if cfg.Report.TopK != DefaultTopK {
		t.Errorf("top_k = %d, want %d", cfg.Report.TopK, DefaultTopK)
	}

	components, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := components.Segmenter.(*segment.Pattern); !ok {
		t.Errorf("segmenter = %T, want *segment.Pattern", components.Segmenter)
	}
}

func TestValidateFailures(t *testing.T) {
	alpha := -0.1
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty alphabet", func(c *Config) { c.Profile.Alphabet.Ranges = nil; c.Profile.Alphabet.Chars = "" }},
		{"empty terminators", func(c *Config) { c.Profile.Terminators = "" }},
		{"negative alpha", func(c *Config) { c.Profile.Alpha = &alpha }},
		{"unknown segmenter", func(c *Config) { c.Profile.Segmenter = "neural" }},
		{"dict without path", func(c *Config) { c.Profile.Segmenter = SegmenterDict; c.Profile.DictPath = "" }},
		{"zero top_k", func(c *Config) { c.Report.TopK = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, internalerr.ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidateAcceptsZeroAlpha(t *testing.T) {
	cfg := validConfig()
	zero := 0.0
	cfg.Profile.Alpha = &zero
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero alpha rejected: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "profile: [not: a: mapping")
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func validConfig() *Config {
	cfg := &Config{}
	cfg.Profile.Alphabet.Chars = "ab"
	cfg.Profile.Terminators = "."
	cfg.applyDefaults()
	return cfg
}
