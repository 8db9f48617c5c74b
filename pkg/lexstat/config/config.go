// Package config loads analysis profiles and materializes the cleaning
// and segmentation components they describe.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/lexstat/pkg/lexstat/entropy"
	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
)

// Segmentation strategy names accepted by Profile.Segmenter.
const (
	SegmenterPattern = "pattern"
	SegmenterDict    = "dict"
)

// DefaultTopK is the top-k size used when the profile leaves it unset.
const DefaultTopK = 50

// Config is one analysis run's full configuration.
type Config struct {
	Profile Profile `yaml:"profile"`
	Corpus  Corpus  `yaml:"corpus"`
	Report  Report  `yaml:"report"`
	Store   Store   `yaml:"store"`
}

// Profile describes how text is cleaned and segmented and how entropy
// is smoothed. One generic engine parameterized this way covers both a
// character-script corpus and a Latin-alphabet corpus.
type Profile struct {
	Name string `yaml:"name"`

	Alphabet struct {
		// Ranges lists inclusive code point ranges in lo-hi hex form,
		// e.g. "4E00-9FA5".
		Ranges []string `yaml:"ranges"`
		// Chars lists individual allowed runes.
		Chars string `yaml:"chars"`
	} `yaml:"alphabet"`

	Terminators string `yaml:"terminators"`

	// DropPolicy is "delete" or "space"; empty means delete.
	DropPolicy string `yaml:"drop_policy"`

	Lowercase   bool `yaml:"lowercase"`
	FoldAccents bool `yaml:"fold_accents"`

	// Segmenter is "pattern" or "dict".
	Segmenter  string `yaml:"segmenter"`
	DictPath   string `yaml:"dict_path"`
	MinWordLen int    `yaml:"min_word_len"`

	// Alpha is the additive smoothing constant for entropy; zero is
	// the degenerate unsmoothed estimate, negative is invalid. When
	// the key is absent the default applies.
	Alpha *float64 `yaml:"alpha"`
}

// Corpus describes where blocks come from.
type Corpus struct {
	Root      string   `yaml:"root"`
	Subdirs   []string `yaml:"subdirs"`
	Prefix    string   `yaml:"prefix"`
	StripHTML bool     `yaml:"strip_html"`
}

// Report describes the rendered output.
type Report struct {
	TopK      int    `yaml:"top_k"`
	ChartPath string `yaml:"chart_path"`
}

// Store describes the optional run-summary store.
type Store struct {
	SQLitePath string `yaml:"sqlite_path"`
}

// Load reads a YAML config file and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Profile.Segmenter == "" {
		c.Profile.Segmenter = SegmenterPattern
	}
	if c.Profile.Alpha == nil {
		alpha := entropy.DefaultAlpha
		c.Profile.Alpha = &alpha
	}
	if c.Report.TopK == 0 {
		c.Report.TopK = DefaultTopK
	}
}

// Alpha returns the configured smoothing constant.
func (c *Config) Alpha() float64 {
	if c.Profile.Alpha == nil {
		return entropy.DefaultAlpha
	}
	return *c.Profile.Alpha
}

// Validate rejects configurations that must fail before any
// accumulation begins.
func (c *Config) Validate() error {
	p := c.Profile

	if len(p.Alphabet.Ranges) == 0 && p.Alphabet.Chars == "" {
		return fmt.Errorf("%w: empty alphabet filter", internalerr.ErrInvalidConfig)
	}
	if p.Terminators == "" {
		return fmt.Errorf("%w: empty sentence terminator set", internalerr.ErrInvalidConfig)
	}
	if p.Alpha != nil && *p.Alpha < 0 {
		return fmt.Errorf("%w: smoothing alpha %v is negative", internalerr.ErrInvalidConfig, *p.Alpha)
	}
	switch p.Segmenter {
	case SegmenterPattern:
	case SegmenterDict:
		if p.DictPath == "" {
			return fmt.Errorf("%w: dict segmenter requires dict_path", internalerr.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown segmenter %q", internalerr.ErrInvalidConfig, p.Segmenter)
	}
	if c.Report.TopK < 1 {
		return fmt.Errorf("%w: top_k %d must be at least 1", internalerr.ErrInvalidConfig, c.Report.TopK)
	}

	return nil
}
